package memory

import (
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/repository"
	"sort"
	"time"
)

type attachmentRepo struct{ s *Store }

func (r attachmentRepo) GetByID(id uint) (*model.Attachment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.attachments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r attachmentRepo) collect(match func(model.Attachment) bool) []model.Attachment {
	out := []model.Attachment{}
	for _, a := range r.s.attachments {
		if match(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r attachmentRepo) GetByEventID(eventID uint) ([]model.Attachment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(a model.Attachment) bool { return a.EventID == eventID }), nil
}

func (r attachmentRepo) GetByUserID(userID uint) ([]model.Attachment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(a model.Attachment) bool { return a.UserID == userID }), nil
}

func (r attachmentRepo) GetByCompanyID(companyID uint) ([]model.Attachment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(a model.Attachment) bool {
		return a.CompanyID != nil && *a.CompanyID == companyID
	}), nil
}

func (r attachmentRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.attachments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.attachments, id)
	return nil
}

func (r attachmentRepo) DeleteByUserID(userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, a := range r.s.attachments {
		if a.UserID == userID {
			delete(r.s.attachments, id)
		}
	}
	return nil
}

func (r attachmentRepo) AttachToEvent(a *model.Attachment) (*model.AttendanceEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	event, ok := r.s.events[a.EventID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.UserID = event.UserID
	a.CompanyID = event.CompanyID
	a.ID = r.s.newID()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.s.attachments[a.ID] = *a

	id := a.ID
	event.AttachmentID = &id
	if event.Status == model.StatusLate {
		event.Status = model.StatusJustified
	}
	event.UpdatedAt = time.Now()
	r.s.events[event.ID] = event
	return &event, nil
}
