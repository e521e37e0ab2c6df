package services

import (
	"errors"
	"fmt"
	"time"

	"car-advisor/internal/domain/apperrors"
	"car-advisor/internal/domain/dto"
	"car-advisor/internal/domain/entities"
	"car-advisor/internal/infra/logger"

	"github.com/golang-jwt/jwt/v5"
)

// Demo users only; real identity lives outside this service.
type demoUser struct {
	ID       int
	Email    string
	Password string
	Phone    string
}

var demoUsers = []demoUser{
	{ID: 1, Email: "abhamisaqi@email.com", Password: "demo1234", Phone: "555-111-2222"},
	{ID: 2, Email: "bernicehoang@email.com", Password: "guest1234", Phone: "555-333-4444"},
}

type tokenClaims struct {
	UserID int    `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the HS256 bearer tokens guarding the
// catalog and favorites endpoints.
type TokenService struct {
	Logger *logger.Logger
	secret []byte
	ttl    time.Duration
}

func NewTokenService(logger *logger.Logger, secret string) *TokenService {
	return &TokenService{Logger: logger, secret: []byte(secret), ttl: 24 * time.Hour}
}

func (ts *TokenService) Login(email, password string) (*dto.LoginResponse, error) {
	var user *demoUser
	for i := range demoUsers {
		if demoUsers[i].Email == email {
			user = &demoUsers[i]
			break
		}
	}
	if user == nil || user.Password != password {
		return nil, apperrors.ErrBadCredentials
	}

	now := time.Now()
	claims := tokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		ts.Logger.Error(fmt.Sprintf("Failed to sign token for %s: %v", email, err))
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserView{ID: user.ID, Email: user.Email, Phone: user.Phone},
	}, nil
}

func (ts *TokenService) Verify(tokenString string) (*entities.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Method)
		}
		return ts.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: expired", apperrors.ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return &entities.Principal{ID: claims.UserID, Email: claims.Email}, nil
}
