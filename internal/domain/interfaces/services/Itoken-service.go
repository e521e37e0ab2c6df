package services

import (
	"car-advisor/internal/domain/dto"
	"car-advisor/internal/domain/entities"
)

type ITokenService interface {
	Login(email, password string) (*dto.LoginResponse, error)
	Verify(token string) (*entities.Principal, error)
}
