package engine

import (
	"testing"

	"finpulse/internal/models"
)

func debits(category models.Category, amount float64, n int) []models.Transaction {
	txs := make([]models.Transaction, n)
	for i := range txs {
		txs[i] = models.Transaction{Category: category, Type: models.TypeDebit, Amount: amount}
	}
	return txs
}

func TestBuildProfileEmpty(t *testing.T) {
	p := BuildProfile(nil)

	if p.FoodCount != 0 || p.TravelCount != 0 || p.EducationCount != 0 ||
		p.RentCount != 0 || p.ShoppingCount != 0 || p.EntertainmentCount != 0 {
		t.Errorf("expected zero counts, got %+v", p)
	}
	if p.TotalSpent != 0 || p.TotalIncome != 0 {
		t.Errorf("expected zero totals, got spent=%v income=%v", p.TotalSpent, p.TotalIncome)
	}
	if !p.LowBalance {
		t.Error("empty set must be low balance (0 - 0 < 500)")
	}
	if p.SalaryDetected || p.IsTraveler {
		t.Errorf("expected no signals, got %+v", p)
	}
	if p.FoodSpending != FoodSpendingLow {
		t.Errorf("FoodSpending = %q, want low", p.FoodSpending)
	}
}

func TestBuildProfileCounts(t *testing.T) {
	var txs []models.Transaction
	txs = append(txs, debits(models.CategoryFood, 10, 6)...)
	txs = append(txs, debits(models.CategoryTravel, 50, 4)...)
	txs = append(txs, debits(models.CategoryEducation, 200, 2)...)
	txs = append(txs, debits(models.CategoryRent, 800, 2)...)
	txs = append(txs, debits(models.CategoryShopping, 30, 6)...)
	txs = append(txs, debits(models.CategoryEntertainment, 15, 1)...)
	txs = append(txs, models.Transaction{Category: models.CategorySalary, Type: models.TypeCredit, Amount: 5000})

	p := BuildProfile(txs)

	if p.FoodCount != 6 || p.TravelCount != 4 || p.EducationCount != 2 ||
		p.RentCount != 2 || p.ShoppingCount != 6 || p.EntertainmentCount != 1 {
		t.Errorf("unexpected counts: %+v", p)
	}
	if !p.SalaryDetected {
		t.Error("salary credit not detected")
	}
	if !p.IsTraveler {
		t.Error("4 travel transactions should mark a traveler")
	}
	if p.FoodSpending != FoodSpendingHigh {
		t.Errorf("6 food transactions should be high food spending, got %q", p.FoodSpending)
	}
	wantSpent := 6*10.0 + 4*50 + 2*200 + 2*800 + 6*30 + 15
	if p.TotalSpent != wantSpent {
		t.Errorf("TotalSpent = %v, want %v", p.TotalSpent, wantSpent)
	}
	if p.TotalIncome != 5000 {
		t.Errorf("TotalIncome = %v, want 5000", p.TotalIncome)
	}
	if p.LowBalance {
		t.Errorf("income 5000 - spent %v is not low balance", wantSpent)
	}
}

func TestBuildProfileThresholds(t *testing.T) {
	tests := []struct {
		name       string
		txs        []models.Transaction
		isTraveler bool
		foodHigh   bool
		lowBalance bool
	}{
		{
			name:       "travel at threshold is not a traveler",
			txs:        debits(models.CategoryTravel, 1, 3),
			isTraveler: false,
			lowBalance: true,
		},
		{
			name:       "travel above threshold",
			txs:        debits(models.CategoryTravel, 1, 4),
			isTraveler: true,
			lowBalance: true,
		},
		{
			name:       "food at threshold is low",
			txs:        debits(models.CategoryFood, 1, 5),
			foodHigh:   false,
			lowBalance: true,
		},
		{
			name:       "food above threshold is high",
			txs:        debits(models.CategoryFood, 1, 6),
			foodHigh:   true,
			lowBalance: true,
		},
		{
			name: "net exactly at threshold is not low balance",
			txs: []models.Transaction{
				{Category: models.CategorySalary, Type: models.TypeCredit, Amount: 500},
			},
			lowBalance: false,
		},
		{
			name: "net just under threshold is low balance",
			txs: []models.Transaction{
				{Category: models.CategorySalary, Type: models.TypeCredit, Amount: 499.99},
			},
			lowBalance: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildProfile(tt.txs)
			if p.IsTraveler != tt.isTraveler {
				t.Errorf("IsTraveler = %v, want %v", p.IsTraveler, tt.isTraveler)
			}
			if got := p.FoodSpending == FoodSpendingHigh; got != tt.foodHigh {
				t.Errorf("food high = %v, want %v", got, tt.foodHigh)
			}
			if p.LowBalance != tt.lowBalance {
				t.Errorf("LowBalance = %v, want %v", p.LowBalance, tt.lowBalance)
			}
		})
	}
}

// Totals are rounded half away from zero to exactly 2 decimals.
func TestBuildProfileRounding(t *testing.T) {
	txs := []models.Transaction{
		{Category: models.CategoryFood, Type: models.TypeDebit, Amount: 10.114},
		{Category: models.CategoryFood, Type: models.TypeDebit, Amount: 20.111},
		{Category: models.CategorySalary, Type: models.TypeCredit, Amount: 1000.005},
	}

	p := BuildProfile(txs)

	if p.TotalSpent != 30.23 {
		t.Errorf("TotalSpent = %v, want 30.23", p.TotalSpent)
	}
	if p.TotalIncome != 1000.01 {
		t.Errorf("TotalIncome = %v, want 1000.01", p.TotalIncome)
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.675, 2.68},
		{12.345, 12.35},
		{100.125, 100.13},
		{1.004, 1.0},
		{0, 0},
		{-12.345, -12.35},
	}
	for _, tt := range tests {
		if got := roundCents(tt.in); got != tt.want {
			t.Errorf("roundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
