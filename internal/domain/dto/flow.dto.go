package dto

import "car-advisor/internal/domain/entities"

// StartRequest may omit UserID; the engine then generates an opaque
// session key and echoes it back in the turn result.
type StartRequest struct {
	UserID     string `json:"userId"`
	TTSEnabled *bool  `json:"ttsEnabled"`
}

type AnswerRequest struct {
	UserID     string `json:"userId" validate:"required"`
	QuestionID string `json:"questionId" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	TTSEnabled *bool  `json:"ttsEnabled"`
}

// SpeechView is the TTS decoration of a question; AudioRef points at the
// audio endpoint only when a cache entry already exists.
type SpeechView struct {
	Enabled  bool   `json:"enabled"`
	AudioRef string `json:"audioUrl,omitempty"`
}

type QuestionView struct {
	ID          string                    `json:"id"`
	Text        string                    `json:"text"`
	Subtext     string                    `json:"subtext,omitempty"`
	Category    entities.QuestionCategory `json:"category"`
	Placeholder string                    `json:"placeholder"`
	Examples    []string                  `json:"examples"`
	Tooltip     string                    `json:"tooltip,omitempty"`
	Speech      *SpeechView               `json:"tts,omitempty"`
}

type ProgressView struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// TurnResult is the payload of one start/answer turn. While the interview
// is open it carries the next question; once complete it carries the
// accumulated profile instead.
type TurnResult struct {
	Complete          bool                        `json:"complete"`
	UserID            string                      `json:"userId"`
	Question          *QuestionView               `json:"question,omitempty"`
	LoadingTransition *entities.LoadingTransition `json:"loadingTransition,omitempty"`
	Progress          *ProgressView               `json:"progress,omitempty"`
	UserData          *entities.UserProfile       `json:"userData,omitempty"`
	Message           string                      `json:"message,omitempty"`
}
