package engine

import (
	"math"

	"finpulse/internal/models"
)

// Classification thresholds. Fixed policy, not user-configurable.
const (
	lowBalanceThreshold = 500.0
	foodHighCount       = 5
	travelerMinTrips    = 3
)

type FoodSpending string

const (
	FoodSpendingHigh FoodSpending = "high"
	FoodSpendingLow  FoodSpending = "low"
)

// Profile is an immutable behavior snapshot derived from one user's
// transaction set. All downstream classification reads only this value.
type Profile struct {
	FoodCount          int
	TravelCount        int
	EducationCount     int
	RentCount          int
	ShoppingCount      int
	EntertainmentCount int
	SalaryDetected     bool
	TotalSpent         float64
	TotalIncome        float64
	LowBalance         bool
	FoodSpending       FoodSpending
	IsTraveler         bool
}

// BuildProfile aggregates a transaction set into a behavior profile.
// Safe on an empty set: counts and totals are zero and LowBalance is true
// (0 - 0 < 500). Monetary totals are rounded to 2 decimals, half away from
// zero; they feed display text downstream.
func BuildProfile(txs []models.Transaction) Profile {
	var p Profile
	var spent, income float64

	for _, tx := range txs {
		switch tx.Category {
		case models.CategoryFood:
			p.FoodCount++
		case models.CategoryTravel:
			p.TravelCount++
		case models.CategorySalary:
			p.SalaryDetected = true
		case models.CategoryEducation:
			p.EducationCount++
		case models.CategoryRent:
			p.RentCount++
		case models.CategoryShopping:
			p.ShoppingCount++
		case models.CategoryEntertainment:
			p.EntertainmentCount++
		}
		switch tx.Type {
		case models.TypeDebit:
			spent += tx.Amount
		case models.TypeCredit:
			income += tx.Amount
		}
	}

	p.TotalSpent = roundCents(spent)
	p.TotalIncome = roundCents(income)
	p.LowBalance = income-spent < lowBalanceThreshold
	p.IsTraveler = p.TravelCount > travelerMinTrips
	p.FoodSpending = FoodSpendingLow
	if p.FoodCount > foodHighCount {
		p.FoodSpending = FoodSpendingHigh
	}
	return p
}

// roundCents rounds to 2 decimal places, half away from zero.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
