package usecase

import "checkrrhh-backend/internal/model"

// Actor is the signed-in user a request acts for.
type Actor struct {
	UserID    uint
	Role      model.Role
	CompanyID *uint
}

func (a Actor) IsSuperAdmin() bool {
	return a.Role == model.RoleSuperAdmin
}

func (a Actor) CanAccessCompany(companyID uint) bool {
	if a.IsSuperAdmin() {
		return true
	}
	return a.Role == model.RoleCompanyAdmin && a.CompanyID != nil && *a.CompanyID == companyID
}

// canAccessUser covers users without a company, which only the super-admin
// may touch.
func (a Actor) canAccessUser(u *model.User) bool {
	if a.IsSuperAdmin() {
		return true
	}
	return u.CompanyID != nil && a.CanAccessCompany(*u.CompanyID)
}

// scope resolves which company a listing covers. nil means every company
// and is only returned to the super-admin.
func (a Actor) scope(requested *uint) (*uint, error) {
	if a.IsSuperAdmin() {
		return requested, nil
	}
	if a.Role != model.RoleCompanyAdmin || a.CompanyID == nil {
		return nil, ErrForbidden
	}
	if requested != nil && *requested != *a.CompanyID {
		return nil, ErrForbidden
	}
	return a.CompanyID, nil
}
