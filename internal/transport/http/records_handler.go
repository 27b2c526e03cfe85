package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"ontap-quiz-service/internal/app"
	"ontap-quiz-service/internal/domain"
)

// RecordsHandler serves the read side of the result log and the daily
// attempt counters for the leaderboard, history, and login-summary views.
type RecordsHandler struct {
	service *app.ExamService
	log     *zap.Logger
}

func NewRecordsHandler(service *app.ExamService, log *zap.Logger) *RecordsHandler {
	return &RecordsHandler{service: service, log: log}
}

// Leaderboard returns the top results by score. ?limit= defaults to 10.
func (h *RecordsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.service.Leaderboard(r.Context(), limit)
	if err != nil {
		h.log.Error("leaderboard read failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, records)
}

// History returns one user's results in submission order.
func (h *RecordsHandler) History(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "missing username", http.StatusBadRequest)
		return
	}

	records, err := h.service.History(r.Context(), username)
	if err != nil {
		h.log.Error("history read failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []domain.ResultRecord{}
	}
	h.writeJSON(w, records)
}

// Attempts returns today's attempts-remaining per subject and round.
func (h *RecordsHandler) Attempts(w http.ResponseWriter, r *http.Request) {
	user := domain.User{
		Username: r.URL.Query().Get("username"),
		Class:    r.URL.Query().Get("class"),
	}
	if user.Anonymous() {
		http.Error(w, "missing username", http.StatusBadRequest)
		return
	}

	summary, err := h.service.AttemptsSummary(r.Context(), user)
	if err != nil {
		h.log.Error("attempts read failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, summary)
}

func (h *RecordsHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Debug("write response", zap.Error(err))
	}
}
