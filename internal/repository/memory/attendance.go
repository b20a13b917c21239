package memory

import (
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/repository"
	"sort"
	"time"
)

type attendanceRepo struct{ s *Store }

// insert stores e, enforcing the (user, date, kind) index. Caller holds mu.
func (r attendanceRepo) insert(e *model.AttendanceEvent) error {
	for _, other := range r.s.events {
		if other.UserID == e.UserID && other.Date == e.Date && other.Kind == e.Kind {
			return repository.ErrDuplicate
		}
	}
	e.ID = r.s.newID()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	r.s.events[e.ID] = *e
	return nil
}

func (r attendanceRepo) Create(e *model.AttendanceEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.insert(e)
}

func (r attendanceRepo) GetByID(id uint) (*model.AttendanceEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

// collect returns matching events oldest first. Caller holds mu.
func (r attendanceRepo) collect(match func(model.AttendanceEvent) bool) []model.AttendanceEvent {
	out := []model.AttendanceEvent{}
	for _, e := range r.s.events {
		if match(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func newestFirst(list []model.AttendanceEvent, limit int) []model.AttendanceEvent {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

func (r attendanceRepo) GetByUserAndDate(userID uint, date string) ([]model.AttendanceEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(e model.AttendanceEvent) bool {
		return e.UserID == userID && e.Date == date
	}), nil
}

func (r attendanceRepo) GetByUserID(userID uint, limit int) ([]model.AttendanceEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.collect(func(e model.AttendanceEvent) bool {
		return e.UserID == userID
	}), limit), nil
}

func (r attendanceRepo) GetByDate(date string, companyID *uint) ([]model.AttendanceEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(e model.AttendanceEvent) bool {
		if e.Date != date {
			return false
		}
		return companyID == nil || (e.CompanyID != nil && *e.CompanyID == *companyID)
	}), nil
}

func (r attendanceRepo) GetByCompanyID(companyID uint, limit int) ([]model.AttendanceEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.collect(func(e model.AttendanceEvent) bool {
		return e.CompanyID != nil && *e.CompanyID == companyID
	}), limit), nil
}

func (r attendanceRepo) GetAll(limit int) ([]model.AttendanceEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.collect(func(model.AttendanceEvent) bool { return true }), limit), nil
}

func (r attendanceRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.events, id)
	return nil
}

func (r attendanceRepo) DeleteByUserID(userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, e := range r.s.events {
		if e.UserID == userID {
			delete(r.s.events, id)
		}
	}
	return nil
}

// AppendForDay runs under the store mutex, so read, decide and insert are
// one step for every caller.
func (r attendanceRepo) AppendForDay(userID uint, date string, decide repository.DecideFunc) (*model.AttendanceEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[userID]; !ok {
		return nil, repository.ErrNotFound
	}

	today := r.collect(func(e model.AttendanceEvent) bool {
		return e.UserID == userID && e.Date == date
	})
	event, err := decide(today)
	if err != nil {
		return nil, err
	}
	if err := r.insert(event); err != nil {
		return nil, err
	}
	return event, nil
}
