package costing

import (
	"encoding/json"
	"net/http"

	flooding "Safetyguide360/internal/calc/flooding"
	pricing "Safetyguide360/internal/pricing"
)

type Handler struct {
	Prices pricing.Table
	Rates  pricing.Rates
}

type CalcRequest struct {
	Sizing   flooding.Result `json:"sizing"`
	Currency string          `json:"currency"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(req.Sizing, h.Prices, h.Rates, req.Currency)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

type ConvertRequest struct {
	Breakdown Result `json:"breakdown"`
	Currency  string `json:"currency"`
}

func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Redisplay(req.Breakdown, h.Rates, req.Currency)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
