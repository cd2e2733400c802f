// Package engine implements the behavior-classification and guardrail
// pipeline: feature extraction from ledger records, rule-based persona and
// life-event inference, product recommendation, confidence scoring and a
// compliance guardrail. Every stage is a pure function of its input, so the
// whole pipeline is deterministic and safe for concurrent use.
package engine

import (
	"finpulse/internal/models"
)

// categoryMap canonicalizes raw bank export labels into the closed category
// set. Fixed policy data, never mutated at runtime.
var categoryMap = map[string]models.Category{
	"Restaurants":         models.CategoryFood,
	"Fast Food":           models.CategoryFood,
	"Groceries":           models.CategoryFood,
	"Paycheck":            models.CategorySalary,
	"Mortgage & Rent":     models.CategoryRent,
	"Gas & Fuel":          models.CategoryTravel,
	"Air Travel":          models.CategoryTravel,
	"Shopping":            models.CategoryShopping,
	"Movies & Dvds":       models.CategoryEntertainment,
	"Music":               models.CategoryEntertainment,
	"Utilities":           models.CategoryUtilities,
	"Mobile Phone":        models.CategoryUtilities,
	"Home Improvement":    models.CategoryLifestyle,
	"Credit Card Payment": models.CategoryPayment,
	"Education":           models.CategoryEducation,
	"Transfer":            models.CategoryTransfer,
}

// CanonicalCategory maps a raw category label to its canonical category.
// Unmapped labels fall back to Other, never an error.
func CanonicalCategory(raw string) models.Category {
	if c, ok := categoryMap[raw]; ok {
		return c
	}
	return models.CategoryOther
}

// LoadTransactions filters records belonging to userID and normalizes them
// into the engine's transaction shape, preserving source order. A user with
// no records yields an empty slice; callers short-circuit on it.
func LoadTransactions(records []models.LedgerRecord, userID string) []models.Transaction {
	txs := make([]models.Transaction, 0, len(records))
	for _, rec := range records {
		if rec.UserID != userID {
			continue
		}
		txs = append(txs, models.Transaction{
			UserID:      rec.UserID,
			Date:        rec.Date,
			Amount:      rec.Amount,
			Category:    CanonicalCategory(rec.Category),
			Type:        rec.Type,
			Description: rec.Description,
		})
	}
	return txs
}
