package usecase

import (
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/repository"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthUsecase(users repository.UserRepository, secret string, ttl time.Duration) *AuthUsecase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthUsecase{users: users, secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Login checks the credentials and signs a token carrying the user's id,
// role and company.
func (u *AuthUsecase) Login(email, password string) (string, *model.User, error) {
	user, err := u.users.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     u.now().Add(u.ttl).Unix(),
	}
	if user.CompanyID != nil {
		claims["company_id"] = *user.CompanyID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(u.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return t, user, nil
}

// HashPassword is the one place passwords are hashed.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
