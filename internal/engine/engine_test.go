package engine

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"finpulse/internal/models"
)

func ledgerRows(userID, category string, txType models.TransactionType, amount float64, n int) []models.LedgerRecord {
	rows := make([]models.LedgerRecord, n)
	for i := range rows {
		rows[i] = models.LedgerRecord{
			UserID:   userID,
			Category: category,
			Type:     txType,
			Amount:   amount,
		}
	}
	return rows
}

func TestAnalyzeNoData(t *testing.T) {
	result, err := Analyze("user_404", nil)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result on no data, got %+v", result)
	}

	// Records for other users only is still no data for this one
	rows := ledgerRows("user_001", "Shopping", models.TypeDebit, 20, 3)
	if _, err := Analyze("user_404", rows); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for filtered-out user, got %v", err)
	}
}

func TestAnalyzeStudentLowBalance(t *testing.T) {
	rows := ledgerRows("user_001", "Education", models.TypeDebit, 400, 3)

	result, err := Analyze("user_001", rows)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if result.LifeEvent != LifeEventHigherEducation {
		t.Errorf("LifeEvent = %q, want higher_education", result.LifeEvent)
	}
	if result.Persona != PersonaStudent {
		t.Errorf("Persona = %q, want student", result.Persona)
	}
	// Education loan candidate is vetoed on a low balance
	if result.Guardrail != "blocked" {
		t.Errorf("Guardrail = %q, want blocked", result.Guardrail)
	}
	if result.Product != ProductBasicSavings {
		t.Errorf("Product = %q, want basic savings account", result.Product)
	}
	if !strings.Contains(result.GuardrailNote, "low balance") {
		t.Errorf("GuardrailNote = %q, want low-balance substitution", result.GuardrailNote)
	}
	// 30 education + 20 life event + 10 persona
	if result.Confidence != 60 {
		t.Errorf("Confidence = %d, want 60", result.Confidence)
	}
	if !strings.Contains(result.Reason, "education payments found (3 times)") {
		t.Errorf("Reason = %q, want education clause", result.Reason)
	}
}

func TestAnalyzeTravelerWithSalary(t *testing.T) {
	rows := ledgerRows("user_002", "Air Travel", models.TypeDebit, 100, 5)
	rows = append(rows, models.LedgerRecord{
		UserID: "user_002", Category: "Paycheck", Type: models.TypeCredit, Amount: 5000,
	})

	result, err := Analyze("user_002", rows)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if result.LifeEvent != LifeEventFrequentTraveler {
		t.Errorf("LifeEvent = %q, want frequent_traveler", result.LifeEvent)
	}
	if result.Persona != PersonaSpender {
		t.Errorf("Persona = %q, want spender", result.Persona)
	}
	// Travel card is suitable for an actual traveler
	if result.Guardrail != "passed" {
		t.Errorf("Guardrail = %q, want passed", result.Guardrail)
	}
	if result.Product != ProductTravelCard {
		t.Errorf("Product = %q, want travel card", result.Product)
	}
	if result.GuardrailNote != "all checks passed" {
		t.Errorf("GuardrailNote = %q, want all checks passed", result.GuardrailNote)
	}
	// 30 salary + 20 traveler + 20 life event + 10 persona
	if result.Confidence != 80 {
		t.Errorf("Confidence = %d, want 80", result.Confidence)
	}
}

func TestAnalyzeShoppingSpender(t *testing.T) {
	rows := ledgerRows("user_003", "Shopping", models.TypeDebit, 25, 6)

	result, err := Analyze("user_003", rows)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if result.LifeEvent != LifeEventUnknown {
		t.Errorf("LifeEvent = %q, want unknown", result.LifeEvent)
	}
	if result.Persona != PersonaSpender {
		t.Errorf("Persona = %q, want spender", result.Persona)
	}
	if result.Product != ProductCashbackCard {
		t.Errorf("Product = %q, want cashback card", result.Product)
	}
	if result.Confidence != 25 {
		t.Errorf("Confidence = %d, want 25", result.Confidence)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	rows := ledgerRows("user_001", "Restaurants", models.TypeDebit, 18, 7)
	rows = append(rows, ledgerRows("user_001", "Mortgage & Rent", models.TypeDebit, 900, 2)...)
	rows = append(rows, models.LedgerRecord{
		UserID: "user_001", Category: "Paycheck", Type: models.TypeCredit, Amount: 3000,
	})

	first, err := Analyze("user_001", rows)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	second, err := Analyze("user_001", rows)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same transaction set produced different results:\n%+v\n%+v", first, second)
	}
}
