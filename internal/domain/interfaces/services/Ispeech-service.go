package services

import (
	"context"

	"car-advisor/internal/domain/dto"
	"car-advisor/internal/domain/entities"
)

type ISpeechService interface {
	// Ensure returns the cached audio path for nodeID, synthesizing it
	// first when absent. Concurrent calls for the same node perform at
	// most one synthesis. Failure is non-fatal to the caller's turn.
	Ensure(ctx context.Context, nodeID, text string, emphasis []string) (string, error)

	// Lookup reports the cached audio path without triggering synthesis.
	Lookup(nodeID string) (string, bool)

	// Prewarm synthesizes audio for every speech-enabled node that is not
	// cached yet, pacing provider calls to respect its rate limit.
	Prewarm(ctx context.Context, nodes []*entities.QuestionNode) dto.PrewarmSummary

	Stats() (dto.AudioStats, error)
}
