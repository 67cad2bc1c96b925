package model

import json "github.com/goccy/go-json"

type CalculationRequest struct {
	TenantID  string    `json:"tenant_id"`
	Household Household `json:"household"`
}

// Household mirrors the calculator form. Estate is kept raw so that both
// numbers and numeric strings are accepted and anything else is reported as
// an invalid estate rather than a malformed body.
type Household struct {
	Estate     json.RawMessage `json:"estate"`
	Husband    bool            `json:"husband"`
	Wife       bool            `json:"wife"`
	WivesCount int             `json:"wives_count"`
	Father     bool            `json:"father"`
	Mother     bool            `json:"mother"`
	Sons       int             `json:"sons"`
	Daughters  int             `json:"daughters"`
}
