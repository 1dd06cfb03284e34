package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	costing "Safetyguide360/internal/calc/costing"
	flooding "Safetyguide360/internal/calc/flooding"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project   string          `json:"project"`
	Author    string          `json:"author"`
	Title     string          `json:"title"`
	Reference string          `json:"reference"`
	Sizing    flooding.Result `json:"sizing"`
	Costing   costing.Result  `json:"costing"`
	Notes     string          `json:"notes"`
}

type Handler struct{}

type line struct {
	name string
	qty  string
	cost float64
}

func (in *Input) lines() []line {
	c := in.Costing
	s := in.Sizing
	return []line{
		{"FM-200 clean agent", fmt.Sprintf("%.2f kg", s.AgentWeightKg), c.AgentCost},
		{"Storage cylinders", fmt.Sprintf("%d", s.CylinderCount), c.CylindersCost},
		{"Cylinder valves", fmt.Sprintf("%d", s.CylinderCount), c.ValvesCost},
		{"Mounting kits", fmt.Sprintf("%d", s.CylinderCount), c.MountingCost},
		{"Discharge nozzles", fmt.Sprintf("%d", s.NozzleCount), c.NozzlesCost},
		{"Piping", fmt.Sprintf("%.2f m", s.PipingLengthM), c.PipingCost},
		{"Fittings", "-", c.FittingsCost},
		{"Detection panel", "1", c.PanelCost},
		{"Smoke detectors", fmt.Sprintf("%d", c.SmokeDetectorCount), c.SmokeDetectorsCost},
		{"Heat detectors", fmt.Sprintf("%d", costing.HeatDetectors), c.HeatDetectorsCost},
		{"Manual call points", fmt.Sprintf("%d", costing.CallPoints), c.CallPointsCost},
		{"Hooters / strobes", fmt.Sprintf("%d", costing.HooterStrobes), c.HootersCost},
		{"Signage package", "1", c.SignageCost},
	}
}

func (in *Input) serviceLines() []line {
	c := in.Costing
	return []line{
		{"Equipment subtotal", "", c.EquipmentSubtotal},
		{fmt.Sprintf("Installation labor (%.1f h)", c.InstallationHours), "", c.InstallationLabor},
		{"Engineering design", "", c.EngineeringFee},
		{"Commissioning and testing", "", c.CommissioningFee},
		{"Documentation", "", c.DocumentationFee},
		{"Installation markup", "", c.InstallationMarkup},
		{"Engineering markup", "", c.EngineeringMarkup},
		{"Contingency markup", "", c.ContingencyMarkup},
	}
}

func (h *Handler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "FM-200 System Budgetary Quotation"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Prepared by: %s", input.Author))
	pdf.Ln(6)
	if input.Reference != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Reference: %s", input.Reference))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "System sizing")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	s := input.Sizing
	pdf.Cell(0, 5, fmt.Sprintf("Net volume: %.2f m3   Agent: %.2f kg   Cylinders: %d   Nozzles: %d   Piping: %.2f m",
		s.NetVolumeM3, s.AgentWeightKg, s.CylinderCount, s.NozzleCount, s.PipingLengthM))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Itemized costs (USD)")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range input.lines() {
		pdf.Cell(90, 5, l.name)
		pdf.Cell(40, 5, l.qty)
		pdf.CellFormat(40, 5, fmt.Sprintf("%.2f", l.cost), "", 0, "R", false, 0, "")
		pdf.Ln(5)
	}
	pdf.Ln(3)
	for _, l := range input.serviceLines() {
		pdf.Cell(130, 5, l.name)
		pdf.CellFormat(40, 5, fmt.Sprintf("%.2f", l.cost), "", 0, "R", false, 0, "")
		pdf.Ln(5)
	}
	c := input.Costing
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(130, 6, "Total (USD)")
	pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", c.TotalUSD), "", 0, "R", false, 0, "")
	pdf.Ln(6)
	if c.Currency != "" && c.Currency != "USD" {
		pdf.Cell(130, 6, fmt.Sprintf("Total (%s, rate %.4f)", c.Currency, c.ExchangeRate))
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", c.TotalConverted), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	if input.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"quotation.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GenerateCSV(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=\"quotation.csv\"")

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"item", "quantity", "cost_usd"})
	for _, l := range input.lines() {
		_ = cw.Write([]string{l.name, l.qty, fmt.Sprintf("%.2f", l.cost)})
	}
	for _, l := range input.serviceLines() {
		_ = cw.Write([]string{l.name, l.qty, fmt.Sprintf("%.2f", l.cost)})
	}
	c := input.Costing
	_ = cw.Write([]string{"Total (USD)", "", fmt.Sprintf("%.2f", c.TotalUSD)})
	if c.Currency != "" {
		_ = cw.Write([]string{"Total (" + c.Currency + ")", fmt.Sprintf("rate %.4f", c.ExchangeRate), fmt.Sprintf("%.2f", c.TotalConverted)})
	}
	cw.Flush()
}
