package quote

import (
	"encoding/json"
	"net/http"
	"strconv"

	"Safetyguide360/internal/repo"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type QuoteHandler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Title   string          `json:"title"`
	Room    json.RawMessage `json:"room"`
	Sizing  json.RawMessage `json:"sizing"`
	Costing json.RawMessage `json:"costing"`
}

type SaveResponse struct {
	ID        int    `json:"id"`
	Reference string `json:"reference"`
}

func (h *QuoteHandler) Save(w http.ResponseWriter, r *http.Request) {
	idVal := r.Context().Value("userID")
	userID, ok := idVal.(int)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(req.Room) == 0 || len(req.Sizing) == 0 || len(req.Costing) == 0 {
		http.Error(w, "Room, sizing and costing required", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		req.Title = "FM-200 quotation"
	}

	q := repo.Quote{
		Reference: uuid.NewString(),
		Title:     req.Title,
		Room:      req.Room,
		Sizing:    req.Sizing,
		Costing:   req.Costing,
	}
	id, err := h.Repo.SaveQuote(r.Context(), userID, q)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SaveResponse{ID: id, Reference: q.Reference})
}

func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	idVal := r.Context().Value("userID")
	userID, ok := idVal.(int)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.Repo.ListQuotes(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []repo.QuoteSummary{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	idVal := r.Context().Value("userID")
	userID, ok := idVal.(int)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid quote id", http.StatusBadRequest)
		return
	}

	q, err := h.Repo.GetQuote(r.Context(), userID, id)
	if err != nil {
		if err == repo.ErrNotFound {
			http.Error(w, "Quote not found", http.StatusNotFound)
			return
		}
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(q)
}
