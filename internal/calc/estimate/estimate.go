package estimate

import (
	"errors"
	"strings"

	costing "Safetyguide360/internal/calc/costing"
	flooding "Safetyguide360/internal/calc/flooding"
	validate "Safetyguide360/internal/calc/validate"
	pricing "Safetyguide360/internal/pricing"
)

type Input struct {
	Room     flooding.Input `json:"room"`
	Currency string         `json:"currency"`
}

type Result struct {
	Sizing  flooding.Result `json:"sizing"`
	Costing costing.Result  `json:"costing"`
}

// Calculate runs one atomic estimation request: validation, sizing, costing.
// Stateless; every call works on its arguments and returns fresh records.
func Calculate(in Input, prices pricing.Table, rates pricing.Rates) (Result, error) {
	if msgs := validate.Room(in.Room); len(msgs) > 0 {
		return Result{}, errors.New(strings.Join(msgs, "; "))
	}
	sizing, err := flooding.Calculate(in.Room)
	if err != nil {
		return Result{}, err
	}
	costs, err := costing.Calculate(sizing, prices, rates, in.Currency)
	if err != nil {
		return Result{}, err
	}
	return Result{Sizing: sizing, Costing: costs}, nil
}
