package engine

import (
	"errors"

	"finpulse/internal/models"
)

// ErrNoData signals that the user has no transactions. It is an expected
// outcome, not a failure: callers report "no data" instead of a result.
var ErrNoData = errors.New("no transaction data for user")

// Result is the terminal immutable record of one analysis run. It is the
// only value the pipeline exposes to collaborators (API response, audit
// sink). Product is the final product after guardrail review.
type Result struct {
	UserID        string
	Persona       Persona
	LifeEvent     LifeEvent
	Product       Product
	Confidence    int
	Reason        string
	Guardrail     string
	GuardrailNote string
}

// Analyze runs the full pipeline for one user over a set of ledger records:
// load, profile, classify, recommend, score, guardrail, compose. Stages run
// strictly in dependency order and each consumes only the previous stage's
// output. Returns ErrNoData when the user has no transactions.
func Analyze(userID string, records []models.LedgerRecord) (*Result, error) {
	txs := LoadTransactions(records, userID)
	if len(txs) == 0 {
		return nil, ErrNoData
	}

	profile := BuildProfile(txs)
	lifeEvent := DetectLifeEvent(profile)
	persona := DetectPersona(profile, lifeEvent)
	candidate := RecommendProduct(persona, lifeEvent)
	confidence := ConfidenceScore(profile, persona, lifeEvent)
	verdict := ReviewProduct(profile, candidate)
	reason := ComposeRationale(profile, persona)

	return &Result{
		UserID:        userID,
		Persona:       persona,
		LifeEvent:     lifeEvent,
		Product:       verdict.FinalProduct,
		Confidence:    confidence,
		Reason:        reason,
		Guardrail:     verdict.Status(),
		GuardrailNote: verdict.Reason,
	}, nil
}
