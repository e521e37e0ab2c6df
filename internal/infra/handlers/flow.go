package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"car-advisor/internal/domain/apperrors"
	"car-advisor/internal/domain/dto"
	Iservices "car-advisor/internal/domain/interfaces/services"
	"car-advisor/internal/infra/graph"
	"car-advisor/internal/infra/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type FlowHandlers struct {
	Logger        *logger.Logger
	FlowService   Iservices.IFlowService
	SpeechService Iservices.ISpeechService
	Graph         *graph.Graph
	validate      *validator.Validate
}

func NewFlowHandlers(logger *logger.Logger, flowService Iservices.IFlowService, speechService Iservices.ISpeechService, g *graph.Graph) *FlowHandlers {
	return &FlowHandlers{
		Logger:        logger,
		FlowService:   flowService,
		SpeechService: speechService,
		Graph:         g,
		validate:      validator.New(),
	}
}

// Start opens (or restarts) an interview session.
func (fh *FlowHandlers) Start(w http.ResponseWriter, r *http.Request) {
	var req dto.StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Error to process JSON")
		return
	}
	defer r.Body.Close()

	if err := fh.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := fh.FlowService.Start(r.Context(), req)
	if err != nil {
		fh.Logger.Error(fmt.Sprintf("Error starting interview: %v", err))
		writeError(w, http.StatusInternalServerError, "Failed to start game")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Answer advances a session by one turn.
func (fh *FlowHandlers) Answer(w http.ResponseWriter, r *http.Request) {
	var req dto.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Error to process JSON")
		return
	}
	defer r.Body.Close()

	if err := fh.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	result, err := fh.FlowService.SubmitAnswer(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		fh.Logger.Error(fmt.Sprintf("Error processing answer: %v", err))
		writeError(w, http.StatusInternalServerError, "Failed to process answer")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Audio serves a cached synthesized question prompt.
func (fh *FlowHandlers) Audio(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionId"]

	path, ok := fh.SpeechService.Lookup(questionID)
	if !ok {
		writeError(w, http.StatusNotFound, "Audio not found")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "public, max-age=31536000")
	http.ServeFile(w, r, path)
}

// AudioStats reports cache contents, for debugging.
func (fh *FlowHandlers) AudioStats(w http.ResponseWriter, r *http.Request) {
	stats, err := fh.SpeechService.Stats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read cache stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// PregenerateAudio warms the audio cache for every speech-enabled node.
func (fh *FlowHandlers) PregenerateAudio(w http.ResponseWriter, r *http.Request) {
	summary := fh.SpeechService.Prewarm(r.Context(), fh.Graph.Nodes())

	stats, err := fh.SpeechService.Stats()
	if err != nil {
		fh.Logger.Error(fmt.Sprintf("Failed to read cache stats after prewarm: %v", err))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Audio pre-generation complete",
		"summary": summary,
		"stats":   stats,
	})
}
