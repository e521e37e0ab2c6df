package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"car-advisor/internal/domain/apperrors"
	"car-advisor/internal/domain/dto"
	Iservices "car-advisor/internal/domain/interfaces/services"
	"car-advisor/internal/infra/logger"

	"github.com/go-playground/validator/v10"
)

type AuthHandlers struct {
	Logger       *logger.Logger
	TokenService Iservices.ITokenService
	validate     *validator.Validate
}

func NewAuthHandlers(logger *logger.Logger, tokenService Iservices.ITokenService) *AuthHandlers {
	return &AuthHandlers{Logger: logger, TokenService: tokenService, validate: validator.New()}
}

func (ah *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Error to process JSON")
		return
	}
	defer r.Body.Close()

	if err := ah.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	response, err := ah.TokenService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrBadCredentials) {
			writeError(w, http.StatusUnauthorized, "bad credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	writeJSON(w, http.StatusOK, response)
}
