package batch

import (
	"fmt"

	estimate "Safetyguide360/internal/calc/estimate"
	flooding "Safetyguide360/internal/calc/flooding"
	pricing "Safetyguide360/internal/pricing"
)

type RoomsBatchInput struct {
	Rooms    []flooding.Input `json:"rooms"`
	Currency string           `json:"currency"`
}

type RoomsBatchResult struct {
	Results []estimate.Result `json:"results"`
}

// CalculateRooms estimates each room with a shared price table and currency.
// One bad room fails the whole batch so a multi-room quotation is never
// silently incomplete.
func CalculateRooms(in RoomsBatchInput, prices pricing.Table, rates pricing.Rates) (RoomsBatchResult, error) {
	if len(in.Rooms) == 0 {
		return RoomsBatchResult{}, fmt.Errorf("no rooms")
	}
	out := RoomsBatchResult{Results: make([]estimate.Result, 0, len(in.Rooms))}
	for i, room := range in.Rooms {
		res, err := estimate.Calculate(estimate.Input{Room: room, Currency: in.Currency}, prices, rates)
		if err != nil {
			return RoomsBatchResult{}, fmt.Errorf("room %d: %w", i+1, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
