package routes

import (
	"encoding/json"
	"net/http"

	Iservices "car-advisor/internal/domain/interfaces/services"
	"car-advisor/internal/infra/handlers"
	"car-advisor/internal/middleware"

	"github.com/gorilla/mux"
)

type Routes struct {
	Mux             *mux.Router
	AuthHandlers    *handlers.AuthHandlers
	FlowHandlers    *handlers.FlowHandlers
	CatalogHandlers *handlers.CatalogHandlers
	FinanceHandlers *handlers.FinanceHandlers
	TokenService    Iservices.ITokenService
}

func NewRoutes(
	mux *mux.Router,
	authHandlers *handlers.AuthHandlers,
	flowHandlers *handlers.FlowHandlers,
	catalogHandlers *handlers.CatalogHandlers,
	financeHandlers *handlers.FinanceHandlers,
	tokenService Iservices.ITokenService,
) *Routes {
	return &Routes{mux, authHandlers, flowHandlers, catalogHandlers, financeHandlers, tokenService}
}

func (r *Routes) Init() {
	api := r.Mux.PathPrefix("/api").Subrouter()

	api.HandleFunc("/login", r.AuthHandlers.Login).Methods(http.MethodPost)
	api.HandleFunc("/advise", r.FinanceHandlers.Advise).Methods(http.MethodPost)

	game := api.PathPrefix("/game").Subrouter()
	game.HandleFunc("/start", r.FlowHandlers.Start).Methods(http.MethodPost)
	game.HandleFunc("/answer", r.FlowHandlers.Answer).Methods(http.MethodPost)
	game.HandleFunc("/audio/{questionId}", r.FlowHandlers.Audio).Methods(http.MethodGet)
	game.HandleFunc("/audio-stats", r.FlowHandlers.AudioStats).Methods(http.MethodGet)
	game.HandleFunc("/pregenerate-audio", r.FlowHandlers.PregenerateAudio).Methods(http.MethodPost)
	game.HandleFunc("/payment-simulation", r.FinanceHandlers.PaymentSimulation).Methods(http.MethodPost)

	guarded := api.NewRoute().Subrouter()
	guarded.Use(middleware.RequireAuth(r.TokenService))
	guarded.HandleFunc("/models", r.CatalogHandlers.Models).Methods(http.MethodGet)
	guarded.HandleFunc("/favorites", r.CatalogHandlers.ListFavorites).Methods(http.MethodGet)
	guarded.HandleFunc("/favorites", r.CatalogHandlers.AddFavorite).Methods(http.MethodPost)
	guarded.HandleFunc("/favorites/{modelId}", r.CatalogHandlers.RemoveFavorite).Methods(http.MethodDelete)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]bool{"ok": true}
		json.NewEncoder(w).Encode(response)
	}).Methods(http.MethodGet)
}
