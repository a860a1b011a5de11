package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafisyahdn/go-dubbing-backend/internal/model"
	"github.com/rafisyahdn/go-dubbing-backend/internal/repository"
)

type AuthService struct {
	Repo   *repository.PostgresRepo
	jwtKey []byte
}

func NewAuthService(repo *repository.PostgresRepo, jwtKey string) *AuthService {
	return &AuthService{Repo: repo, jwtKey: []byte(jwtKey)}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.Admin, error) {
	admin, err := s.Repo.GetAdminByUsername(ctx, username)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  admin.ID,
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenStr, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", nil, err
	}

	return tokenStr, admin, nil
}
