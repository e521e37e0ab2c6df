package services

import (
	"context"
	"fmt"
	"time"

	"car-advisor/internal/domain/apperrors"
	"car-advisor/internal/domain/dto"
	"car-advisor/internal/domain/entities"
	Irepository "car-advisor/internal/domain/interfaces/repository"
	Iservices "car-advisor/internal/domain/interfaces/services"
	"car-advisor/internal/infra/graph"
	"car-advisor/internal/infra/logger"

	"github.com/google/uuid"
)

const completionMessage = "Journey complete! Calculating matches..."

// FlowEngine orchestrates one interview turn: load the session, interpret
// the answer, merge the profile, resolve the next node, check completion.
// Turns for the same session are serialized by the repository; a failed
// turn leaves the session untouched.
type FlowEngine struct {
	Logger      *logger.Logger
	Graph       *graph.Graph
	Sessions    Irepository.ISessionRepository
	Interpreter *Interpreter
	Speech      Iservices.ISpeechService
}

func NewFlowEngine(logger *logger.Logger, g *graph.Graph, sessions Irepository.ISessionRepository, interpreter *Interpreter, speech Iservices.ISpeechService) *FlowEngine {
	return &FlowEngine{
		Logger:      logger,
		Graph:       g,
		Sessions:    sessions,
		Interpreter: interpreter,
		Speech:      speech,
	}
}

// Start opens (or restarts) a session at the graph's start node. Calling
// it again under the same id resets history and profile.
func (fe *FlowEngine) Start(ctx context.Context, req dto.StartRequest) (*dto.TurnResult, error) {
	userID := req.UserID
	if userID == "" {
		userID = uuid.NewString()
	}

	ttsEnabled := true
	if req.TTSEnabled != nil {
		ttsEnabled = *req.TTSEnabled
	}

	startNode := fe.Graph.Start()
	fe.Sessions.Create(userID, entities.Preferences{TTSEnabled: ttsEnabled, AutoPlayTTS: true}, startNode.ID)

	if ttsEnabled {
		fe.ensureSpeech(ctx, startNode)
	}
	return fe.renderTurn(userID, startNode, 1), nil
}

// SubmitAnswer advances a session by at most one node. A session that is
// already complete idempotently returns the same completion payload and
// never advances further.
func (fe *FlowEngine) SubmitAnswer(ctx context.Context, req dto.AnswerRequest) (*dto.TurnResult, error) {
	var nextNode *entities.QuestionNode

	session, err := fe.Sessions.Update(req.UserID, func(s *entities.Session) error {
		if s.Complete {
			return nil
		}

		node, err := fe.Graph.Node(s.CurrentQuestionID)
		if err != nil {
			return fmt.Errorf("%w: session %s stuck on %q", apperrors.ErrGraphConfiguration, req.UserID, s.CurrentQuestionID)
		}
		if req.QuestionID != node.ID {
			// The session is authoritative; a stale client id is logged
			// but the turn still applies to the current node.
			fe.Logger.Warn(fmt.Sprintf("Answer for %q arrived while session %s is on %q", req.QuestionID, req.UserID, node.ID))
		}

		if req.TTSEnabled != nil {
			s.Preferences.TTSEnabled = *req.TTSEnabled
		}

		fe.applyAnswer(&s.Profile, node.ID, req.Answer)
		s.History = append(s.History, entities.AnswerRecord{
			QuestionID: node.ID,
			Answer:     req.Answer,
			Timestamp:  time.Now(),
		})

		// The completion trigger is authoritative; the question total is a
		// safety bound for edited graphs.
		if node.ID == fe.Graph.CompletionTrigger() || len(s.History) >= fe.Graph.TotalQuestions() {
			s.Complete = true
			s.CurrentQuestionID = fe.Graph.TerminalID()
			return nil
		}

		nextID := fe.Graph.ResolveNext(node, req.Answer, &s.Profile)
		next, err := fe.Graph.Node(nextID)
		if err != nil {
			return fmt.Errorf("%w: node %q routed to unknown node %q", apperrors.ErrGraphConfiguration, node.ID, nextID)
		}
		nextNode = next
		s.CurrentQuestionID = nextID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if session.Complete {
		profile := session.Profile.Clone()
		return &dto.TurnResult{
			Complete: true,
			UserID:   session.UserID,
			UserData: &profile,
			Message:  completionMessage,
		}, nil
	}

	if session.Preferences.TTSEnabled {
		fe.ensureSpeech(ctx, nextNode)
	}
	return fe.renderTurn(session.UserID, nextNode, len(session.History)+1), nil
}

// Profile returns a copy of a session's accumulated profile.
func (fe *FlowEngine) Profile(userID string) (*entities.UserProfile, error) {
	session, err := fe.Sessions.Get(userID)
	if err != nil {
		return nil, err
	}
	profile := session.Profile.Clone()
	return &profile, nil
}

// applyAnswer merges interpreter output into the profile, keyed by the
// question that was just answered. Routing rules then read the merged
// profile instead of re-deriving the same facts.
func (fe *FlowEngine) applyAnswer(profile *entities.UserProfile, nodeID, answer string) {
	switch nodeID {
	case graph.StartNodeID:
		profile.BuyerType = fe.Interpreter.BuyerIntent(answer)

	case "financial_comfort":
		if profile.Budget == nil {
			profile.Budget = &entities.Budget{}
		}
		profile.Budget.Monthly = fe.Interpreter.BudgetAmount(answer)

	case "down_payment_reality":
		if profile.Budget == nil {
			profile.Budget = &entities.Budget{}
		}
		profile.Budget.DownPayment = fe.Interpreter.BudgetAmount(answer)
		if tradeIn := fe.Interpreter.TradeInMention(answer); tradeIn.HasTradeIn {
			profile.TradeIn = &tradeIn
		}

	case "trade_in_context":
		tradeIn := fe.Interpreter.TradeInMention(answer)
		tradeIn.HasTradeIn = true
		profile.TradeIn = &tradeIn

	case "credit_conversation":
		assessment := fe.Interpreter.CreditTier(answer)
		profile.CreditScore = assessment.Level
		profile.CreditConfidence = assessment.Confidence

	case "lifestyle_mission":
		lifestyle := fe.Interpreter.LifestyleIntent(answer)
		profile.Lifestyle = &lifestyle

	case "priorities_tradeoffs":
		priorities := fe.Interpreter.PriorityIntent(answer)
		profile.Priorities = &priorities
	}
}

// ensureSpeech warms the audio cache for a node. Synthesis failure only
// degrades the turn to silent, it never fails it.
func (fe *FlowEngine) ensureSpeech(ctx context.Context, node *entities.QuestionNode) {
	if fe.Speech == nil || node == nil || node.Speech == nil || !node.Speech.Enabled {
		return
	}
	text := node.Speech.VoicePrompt
	if text == "" {
		text = node.Text
	}
	if _, err := fe.Speech.Ensure(ctx, node.ID, text, node.Speech.Emphasis); err != nil {
		fe.Logger.Warn(fmt.Sprintf("Speech unavailable for %s: %v", node.ID, err))
	}
}

func (fe *FlowEngine) renderTurn(userID string, node *entities.QuestionNode, progress int) *dto.TurnResult {
	examples := node.Examples
	if len(examples) > 2 {
		examples = examples[:2]
	}

	view := &dto.QuestionView{
		ID:          node.ID,
		Text:        node.Text,
		Subtext:     node.Subtext,
		Category:    node.Category,
		Placeholder: node.Placeholder,
		Examples:    examples,
		Tooltip:     node.Tooltip,
	}
	if node.Speech != nil && node.Speech.Enabled {
		speech := &dto.SpeechView{Enabled: true}
		if fe.Speech != nil {
			if _, ok := fe.Speech.Lookup(node.ID); ok {
				speech.AudioRef = "/api/game/audio/" + node.ID
			}
		}
		view.Speech = speech
	}

	return &dto.TurnResult{
		UserID:            userID,
		Question:          view,
		LoadingTransition: node.Loading,
		Progress:          &dto.ProgressView{Current: progress, Total: fe.Graph.TotalQuestions()},
	}
}
