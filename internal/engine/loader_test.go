package engine

import (
	"testing"

	"finpulse/internal/models"
)

func TestCanonicalCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want models.Category
	}{
		{"Restaurants", models.CategoryFood},
		{"Fast Food", models.CategoryFood},
		{"Groceries", models.CategoryFood},
		{"Paycheck", models.CategorySalary},
		{"Mortgage & Rent", models.CategoryRent},
		{"Gas & Fuel", models.CategoryTravel},
		{"Air Travel", models.CategoryTravel},
		{"Shopping", models.CategoryShopping},
		{"Movies & Dvds", models.CategoryEntertainment},
		{"Music", models.CategoryEntertainment},
		{"Utilities", models.CategoryUtilities},
		{"Mobile Phone", models.CategoryUtilities},
		{"Home Improvement", models.CategoryLifestyle},
		{"Credit Card Payment", models.CategoryPayment},
		{"Education", models.CategoryEducation},
		{"Transfer", models.CategoryTransfer},
		{"Cryptocurrency", models.CategoryOther},
		{"", models.CategoryOther},
	}

	for _, tt := range tests {
		if got := CanonicalCategory(tt.raw); got != tt.want {
			t.Errorf("CanonicalCategory(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestLoadTransactions(t *testing.T) {
	records := []models.LedgerRecord{
		{UserID: "user_001", Category: "Paycheck", Type: models.TypeCredit, Amount: 3000, Description: "salary march"},
		{UserID: "user_002", Category: "Shopping", Type: models.TypeDebit, Amount: 40},
		{UserID: "user_001", Category: "Fast Food", Type: models.TypeDebit, Amount: 12.5, Description: "burgers"},
		{UserID: "user_001", Category: "Yacht Club", Type: models.TypeDebit, Amount: 900},
	}

	txs := LoadTransactions(records, "user_001")

	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions for user_001, got %d", len(txs))
	}
	// Source order preserved
	if txs[0].Category != models.CategorySalary || txs[1].Category != models.CategoryFood {
		t.Errorf("source order not preserved: %v, %v", txs[0].Category, txs[1].Category)
	}
	// Unmapped label defaults to Other
	if txs[2].Category != models.CategoryOther {
		t.Errorf("unmapped category = %q, want Other", txs[2].Category)
	}
	if txs[1].Description != "burgers" || txs[1].Amount != 12.5 {
		t.Errorf("normalized fields lost: %+v", txs[1])
	}
}

func TestLoadTransactionsNoData(t *testing.T) {
	records := []models.LedgerRecord{
		{UserID: "user_002", Category: "Shopping", Type: models.TypeDebit},
	}

	// Unknown user yields an empty slice, not an error
	if txs := LoadTransactions(records, "user_999"); len(txs) != 0 {
		t.Errorf("expected empty slice for unknown user, got %d transactions", len(txs))
	}
	if txs := LoadTransactions(nil, "user_001"); len(txs) != 0 {
		t.Errorf("expected empty slice for nil records, got %d transactions", len(txs))
	}
}
