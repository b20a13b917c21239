// Package memory keeps every record in process memory. It backs the
// DB_DRIVER=memory demo mode and the usecase and handler tests.
package memory

import (
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/repository"
	"sort"
	"strings"
	"sync"
	"time"
)

type Store struct {
	mu          sync.Mutex
	nextID      uint
	companies   map[uint]model.Company
	users       map[uint]model.User
	events      map[uint]model.AttendanceEvent
	attachments map[uint]model.Attachment
}

func NewStore() *Store {
	return &Store{
		companies:   make(map[uint]model.Company),
		users:       make(map[uint]model.User),
		events:      make(map[uint]model.AttendanceEvent),
		attachments: make(map[uint]model.Attachment),
	}
}

func (s *Store) Companies() repository.CompanyRepository { return companyRepo{s} }

func (s *Store) Users() repository.UserRepository { return userRepo{s} }

func (s *Store) Attendance() repository.AttendanceRepository { return attendanceRepo{s} }

func (s *Store) Attachments() repository.AttachmentRepository { return attachmentRepo{s} }

func (s *Store) newID() uint {
	s.nextID++
	return s.nextID
}

// --- companies ---

type companyRepo struct{ s *Store }

func (r companyRepo) Create(c *model.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.newID()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.s.companies[c.ID] = *c
	return nil
}

func (r companyRepo) GetAll() ([]model.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r companyRepo) GetByID(id uint) (*model.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r companyRepo) Update(c *model.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[c.ID]; !ok {
		return repository.ErrNotFound
	}
	c.UpdatedAt = time.Now()
	r.s.companies[c.ID] = *c
	return nil
}

func (r companyRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.companies, id)
	return nil
}

// --- users ---

type userRepo struct{ s *Store }

// unique reports whether u's email and QR token are free. Caller holds mu.
func (r userRepo) unique(u *model.User) bool {
	for id, other := range r.s.users {
		if id == u.ID {
			continue
		}
		if strings.EqualFold(other.Email, u.Email) {
			return false
		}
		if u.QRToken != nil && other.QRToken != nil && *u.QRToken == *other.QRToken {
			return false
		}
	}
	return true
}

func (r userRepo) Create(u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.unique(u) {
		return repository.ErrDuplicate
	}
	u.ID = r.s.newID()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	stored := *u
	stored.Company = nil
	r.s.users[u.ID] = stored
	return nil
}

func (r userRepo) Update(u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	if !r.unique(u) {
		return repository.ErrDuplicate
	}
	u.UpdatedAt = time.Now()
	stored := *u
	stored.Company = nil
	r.s.users[u.ID] = stored
	return nil
}

func (r userRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

// withCompany mirrors gorm's Preload("Company"). Caller holds mu.
func (r userRepo) withCompany(u model.User) *model.User {
	if u.CompanyID != nil {
		if c, ok := r.s.companies[*u.CompanyID]; ok {
			u.Company = &c
		}
	}
	return &u
}

func (r userRepo) FindByID(id uint) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.withCompany(u), nil
}

func (r userRepo) FindByEmail(email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return r.withCompany(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r userRepo) FindByQRToken(token string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.QRToken != nil && *u.QRToken == token {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r userRepo) list(match func(model.User) bool, search string) []model.User {
	search = strings.ToLower(search)
	out := []model.User{}
	for _, u := range r.s.users {
		if !match(u) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(u.Name), search) && !strings.Contains(strings.ToLower(u.Badge), search) {
			continue
		}
		out = append(out, *r.withCompany(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r userRepo) GetAll(search string) ([]model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.list(func(model.User) bool { return true }, search), nil
}

func (r userRepo) GetByCompanyID(companyID uint, search string) ([]model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.list(func(u model.User) bool {
		return u.CompanyID != nil && *u.CompanyID == companyID
	}, search), nil
}

func (r userRepo) CountByCompanyID(companyID uint, role model.Role) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, u := range r.s.users {
		if u.CompanyID != nil && *u.CompanyID == companyID && u.Role == role {
			n++
		}
	}
	return n, nil
}
