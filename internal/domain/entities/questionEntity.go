package entities

type QuestionCategory string

const (
	CategoryIntro     QuestionCategory = "intro"
	CategoryFinancial QuestionCategory = "financial"
	CategoryLifestyle QuestionCategory = "lifestyle"
	CategoryFeatures  QuestionCategory = "features"
	CategoryGoals     QuestionCategory = "goals"
)

// RouteFunc picks the next node id from the raw answer and the profile
// accumulated so far. Must be pure: no I/O, no randomness.
type RouteFunc func(answer string, profile *UserProfile) string

// Route is a tagged variant. Either Next holds a constant node id, or
// Resolve computes one; Targets then enumerates every id Resolve can
// return so the graph can be validated at startup.
type Route struct {
	Next    string
	Resolve RouteFunc
	Targets []string
}

// Speech describes how a question should be spoken when TTS is enabled.
type Speech struct {
	Enabled      bool
	VoicePrompt  string
	Emphasis     []string
	PauseAfterMS int
}

// LoadingTransition is the filler shown to the client between questions.
type LoadingTransition struct {
	Messages  []string `json:"messages"`
	Duration  int      `json:"duration"`
	Animation string   `json:"animation,omitempty"`
}

// QuestionNode is a single state of the interview graph. Nodes are built
// once at process start and shared read-only across all sessions.
type QuestionNode struct {
	ID          string
	Text        string
	Subtext     string
	Category    QuestionCategory
	Placeholder string
	Examples    []string
	Tooltip     string
	Speech      *Speech
	Loading     *LoadingTransition
	Route       Route
}
