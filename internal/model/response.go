package model

import "github.com/shopspring/decimal"

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages     []CalculationMessage `json:"messages"`
	Distribution *Distribution        `json:"distribution"`
}

// Distribution is the wire form of a computed distribution. Fractions are
// exact "num/den" strings; percentages are for display.
type Distribution struct {
	Estate     decimal.Decimal `json:"estate" yaml:"estate"`
	Heirs      []HeirShare     `json:"heirs" yaml:"heirs"`
	RawTotal   string          `json:"raw_total" yaml:"raw_total"`
	Residue    string          `json:"residue" yaml:"residue"`
	Adjustment string          `json:"adjustment" yaml:"adjustment"`
}

type HeirShare struct {
	ID         string          `json:"id" yaml:"id"`
	Relation   string          `json:"relation" yaml:"relation"`
	Category   string          `json:"category" yaml:"category"`
	Share      string          `json:"share" yaml:"share"`
	Percentage float64         `json:"percentage" yaml:"percentage"`
	Amount     decimal.Decimal `json:"amount" yaml:"amount"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
