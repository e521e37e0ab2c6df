package services

import (
	"context"

	"car-advisor/internal/domain/dto"
	"car-advisor/internal/domain/entities"
)

type IFlowService interface {
	Start(ctx context.Context, req dto.StartRequest) (*dto.TurnResult, error)
	SubmitAnswer(ctx context.Context, req dto.AnswerRequest) (*dto.TurnResult, error)
	Profile(userID string) (*entities.UserProfile, error)
}
