package engine

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"faraid-engine/internal/faraid"
	"faraid-engine/internal/model"
)

func Process(req *model.CalculationRequest, calc faraid.Calculator) *model.CalculationResponse {
	start := time.Now()

	var allMessages []model.CalculationMessage
	outcome := model.OutcomeSuccess

	dist, err := compute(&req.Household, calc)
	if err != nil {
		allMessages = append(allMessages, model.CalculationMessage{
			ID:      len(allMessages),
			Level:   model.LevelCritical,
			Code:    faraid.Code(err),
			Message: err.Error(),
		})
		outcome = model.OutcomeFailure
	} else if msg, ok := adjustmentMessage(dist); ok {
		msg.ID = len(allMessages)
		allMessages = append(allMessages, msg)
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	var result *model.Distribution
	if dist != nil {
		result = ToModel(dist)
	}

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:     allMessages,
			Distribution: result,
		},
	}
}

func compute(h *model.Household, calc faraid.Calculator) (*faraid.Distribution, error) {
	estate, err := parseEstate(h.Estate)
	if err != nil {
		return nil, err
	}
	return calc.Compute(faraid.Household{
		Estate:     estate,
		Husband:    h.Husband,
		Wife:       h.Wife,
		WivesCount: h.WivesCount,
		Father:     h.Father,
		Mother:     h.Mother,
		Sons:       h.Sons,
		Daughters:  h.Daughters,
	})
}

// parseEstate accepts a JSON number or a JSON string holding a number.
func parseEstate(raw json.RawMessage) (decimal.Decimal, error) {
	s := string(raw)
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		s = str
	}
	return faraid.ParseEstate(s)
}

func adjustmentMessage(d *faraid.Distribution) (model.CalculationMessage, bool) {
	switch d.Adjustment {
	case faraid.Awl:
		return model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeAwlApplied,
			Message: fmt.Sprintf("Fixed shares total %s of the estate and were reduced proportionally", d.RawTotal.RatString()),
		}, true
	case faraid.Radd:
		return model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeRaddApplied,
			Message: fmt.Sprintf("Shares total %s of the estate; the remainder was returned to the fixed heirs", d.RawTotal.RatString()),
		}, true
	}
	return model.CalculationMessage{}, false
}

// ToModel converts a distribution into its wire form.
func ToModel(d *faraid.Distribution) *model.Distribution {
	heirs := make([]model.HeirShare, 0, len(d.Heirs))
	for _, h := range d.Heirs {
		heirs = append(heirs, model.HeirShare{
			ID:         h.ID,
			Relation:   h.Relation,
			Category:   h.Category.String(),
			Share:      h.Share.RatString(),
			Percentage: h.Percent(),
			Amount:     h.Amount,
		})
	}
	return &model.Distribution{
		Estate:     d.Estate,
		Heirs:      heirs,
		RawTotal:   d.RawTotal.RatString(),
		Residue:    d.Residue.RatString(),
		Adjustment: d.Adjustment.String(),
	}
}
