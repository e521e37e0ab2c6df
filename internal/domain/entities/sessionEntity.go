package entities

import "time"

type Preferences struct {
	TTSEnabled  bool `json:"ttsEnabled"`
	AutoPlayTTS bool `json:"autoPlayTTS"`
}

// AnswerRecord is one (question, raw answer) pair of the interview history.
type AnswerRecord struct {
	QuestionID string    `json:"questionId"`
	Answer     string    `json:"answer"`
	Timestamp  time.Time `json:"timestamp"`
}

// Session holds one user's interview progress. The progress counter shown
// to the client is always len(History)+1 while the session is open.
type Session struct {
	UserID            string         `json:"userId"`
	CurrentQuestionID string         `json:"currentQuestionId"`
	History           []AnswerRecord `json:"history"`
	Profile           UserProfile    `json:"profile"`
	Complete          bool           `json:"complete"`
	StartedAt         time.Time      `json:"startedAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	Preferences       Preferences    `json:"preferences"`
}

// Clone returns an independent copy; the repository hands these out so
// callers never share memory with the stored record.
func (s *Session) Clone() Session {
	out := *s
	out.History = append([]AnswerRecord(nil), s.History...)
	out.Profile = s.Profile.Clone()
	return out
}

// Principal is the identity carried by a verified auth token.
type Principal struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}
