package batch

import (
	"encoding/json"
	"net/http"

	pricing "Safetyguide360/internal/pricing"
)

type Handler struct {
	Prices pricing.Table
	Rates  pricing.Rates
}

func (h *Handler) Rooms(w http.ResponseWriter, r *http.Request) {
	var input RoomsBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateRooms(input, h.Prices, h.Rates)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
