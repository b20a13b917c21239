package database

import (
	"checkrrhh-backend/internal/logger"
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/repository"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	DemoCompanyName = "Demo Company S.A."
	DemoQRToken     = "EMP-1001-ABC123"
)

type seedUser struct {
	user     model.User
	password string
}

// SeedAll loads the demo company and its accounts. Running it again keeps
// the records and resets their passwords.
func SeedAll(companies repository.CompanyRepository, users repository.UserRepository) error {
	company, err := seedCompany(companies)
	if err != nil {
		return err
	}

	token := DemoQRToken
	accounts := []seedUser{
		{
			user: model.User{
				CompanyID:    &company.ID,
				Badge:        "1001",
				Name:         "Juan Pérez",
				Email:        "juan@empresa.com",
				Department:   "Operations",
				Role:         model.RoleEmployee,
				QRToken:      &token,
				StartTime:    "08:00",
				EndTime:      "17:00",
				LunchOutTime: "12:00",
				LunchInTime:  "13:00",
			},
			password: "1234",
		},
		{
			user: model.User{
				CompanyID: &company.ID,
				Name:      "Company Administrator",
				Email:     "admin@empresa.com",
				Role:      model.RoleCompanyAdmin,
			},
			password: "admin123",
		},
		{
			user: model.User{
				Name:  "Super Administrator",
				Email: "super@checkrrhh.com",
				Role:  model.RoleSuperAdmin,
			},
			password: "super123",
		},
	}

	for _, a := range accounts {
		if err := seedAccount(users, a); err != nil {
			return err
		}
	}
	return nil
}

func seedCompany(companies repository.CompanyRepository) (*model.Company, error) {
	all, err := companies.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Name == DemoCompanyName {
			return &all[i], nil
		}
	}

	company := &model.Company{
		Name:    DemoCompanyName,
		TaxID:   "80012345-6",
		Address: "Asunción, Paraguay",
	}
	if err := companies.Create(company); err != nil {
		return nil, fmt.Errorf("seed company: %w", err)
	}
	logger.Info("seeded company", "id", company.ID, "name", company.Name)
	return company, nil
}

func seedAccount(users repository.UserRepository, a seedUser) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	existing, err := users.FindByEmail(a.user.Email)
	switch {
	case err == nil:
		// Keep the password in sync with the demo one even if the user exists
		existing.Password = string(hashedPassword)
		existing.Company = nil
		if err := users.Update(existing); err != nil {
			return fmt.Errorf("seed %s: %w", a.user.Email, err)
		}
		return nil
	case !errors.Is(err, repository.ErrNotFound):
		return err
	}

	user := a.user
	user.Password = string(hashedPassword)
	if err := users.Create(&user); err != nil {
		return fmt.Errorf("seed %s: %w", a.user.Email, err)
	}
	logger.Info("seeded user", "email", user.Email, "role", user.Role)
	return nil
}
