package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	estimate "Safetyguide360/internal/calc/estimate"
	flooding "Safetyguide360/internal/calc/flooding"
	pricing "Safetyguide360/internal/pricing"

	"github.com/xuri/excelize/v2"
)

type Handler struct {
	Prices pricing.Table
	Rates  pricing.Rates
}

type RoomsImportResult struct {
	Count   int               `json:"count"`
	Results []estimate.Result `json:"results"`
}

// Rooms imports an XLSX room list (one room per row, header skipped) and
// estimates each. Unparseable or invalid rows are skipped.
func (h *Handler) Rooms(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	currency := r.FormValue("currency")

	var results []estimate.Result
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		input, err := parseRoomRow(row)
		if err != nil {
			continue
		}
		res, err := estimate.Calculate(estimate.Input{Room: input, Currency: currency}, h.Prices, h.Rates)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RoomsImportResult{Count: len(results), Results: results})
}

func parseRoomRow(row []string) (flooding.Input, error) {
	// expected: length_m, width_m, height_m, equipment_volume_m3(optional),
	// design_temp_c, altitude_m, safety_factor, concentration_pct, cylinder_size_kg
	if len(row) < 3 {
		return flooding.Input{}, fmt.Errorf("bad row")
	}
	length, err := toFloat(row[0])
	if err != nil {
		return flooding.Input{}, err
	}
	width, err := toFloat(row[1])
	if err != nil {
		return flooding.Input{}, err
	}
	height, err := toFloat(row[2])
	if err != nil {
		return flooding.Input{}, err
	}
	equipment := 0.0
	if len(row) > 3 && row[3] != "" {
		equipment, _ = toFloat(row[3])
	}
	temp := 20.0
	if len(row) > 4 && row[4] != "" {
		temp, _ = toFloat(row[4])
	}
	altitude := 0.0
	if len(row) > 5 && row[5] != "" {
		altitude, _ = toFloat(row[5])
	}
	safety := 0.0
	if len(row) > 6 && row[6] != "" {
		safety, _ = toFloat(row[6])
	}
	concentration := 0.0
	if len(row) > 7 && row[7] != "" {
		concentration, _ = toFloat(row[7])
	}
	cylinder := 0.0
	if len(row) > 8 && row[8] != "" {
		cylinder, _ = toFloat(row[8])
	}
	return flooding.Input{
		LengthM:           length,
		WidthM:            width,
		HeightM:           height,
		EquipmentVolumeM3: equipment,
		DesignTempC:       temp,
		AltitudeM:         altitude,
		SafetyFactor:      safety,
		ConcentrationPct:  concentration,
		CylinderSizeKg:    cylinder,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
