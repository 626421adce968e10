package usecase

import (
	"officegrid/internal/domain/user"
	"officegrid/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, err
	}

	actor := user.Actor{ID: claims.UserID, Role: role}
	if claims.ManagerDomain != nil {
		domain, err := user.NewManagerDomain(*claims.ManagerDomain)
		if err != nil {
			return user.Actor{}, err
		}
		actor.ManagerDomain = &domain
	}
	return actor, nil
}
