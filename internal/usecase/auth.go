package usecase

import (
	"context"
	"strings"

	"parkops/internal/pkg/config"
	"parkops/internal/pkg/errs"
	"parkops/internal/pkg/jwt"
	"parkops/internal/pkg/password"
)

// Auth is deliberately thin: a single operator credential from configuration,
// checked against a bcrypt hash, exchanged for a bearer token. There is no
// user store.
type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (string, error)
}

type authUseCaseImpl struct {
	cfg config.AuthConfig
	jwt *jwt.Service
}

func NewAuthUseCase(cfg config.Config, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		cfg: cfg.Auth,
		jwt: jwtService,
	}
}

func (u *authUseCaseImpl) Login(_ context.Context, email, plainPassword string) (string, error) {
	if !strings.EqualFold(strings.TrimSpace(email), u.cfg.OperatorEmail) {
		return "", errs.ErrInvalidCredentials
	}
	if err := password.ComparePassword(u.cfg.OperatorPasswordHash, plainPassword); err != nil {
		return "", errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := u.jwt.GenerateToken(u.cfg.OperatorEmail)
	if err != nil {
		return "", errs.Wrap(err, "failed to generate token")
	}
	return token, nil
}

type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

type tokenValidatorImpl struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwt: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (string, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}
