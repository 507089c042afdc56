package usecase

import (
	"campus-tickets/internal/pkg/config"
	"campus-tickets/internal/pkg/errs"
	"campus-tickets/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	AdminLogin(password string) (string, error)
}

type authUseCaseImpl struct {
	passwordHash []byte
	jwtService   *jwt.Service
}

func NewAuthUseCase(cfg config.Config, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		passwordHash: []byte(cfg.Admin.PasswordHash),
		jwtService:   jwtService,
	}
}

func (a *authUseCaseImpl) AdminLogin(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return "", errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(jwt.RoleAdmin)
	if err != nil {
		return "", errs.Wrap(err, "failed to generate admin token")
	}
	return token, nil
}
