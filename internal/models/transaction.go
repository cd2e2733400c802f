package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of canonical transaction categories.
// Raw ledger labels are mapped onto it by the engine loader.
type Category string

const (
	CategoryFood          Category = "Food"
	CategorySalary        Category = "Salary"
	CategoryRent          Category = "Rent"
	CategoryTravel        Category = "Travel"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryUtilities     Category = "Utilities"
	CategoryLifestyle     Category = "Lifestyle"
	CategoryPayment       Category = "Payment"
	CategoryEducation     Category = "Education"
	CategoryTransfer      Category = "Transfer"
	CategoryOther         Category = "Other"
)

type TransactionType string

const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// LedgerRecord is a raw transaction row as ingested from the bank export.
// Category holds the source label ("Mortgage & Rent", "Fast Food", ...)
// before canonicalization.
type LedgerRecord struct {
	ID          uuid.UUID       `db:"id"`
	UserID      string          `db:"user_id"`
	AccountName string          `db:"account_name"`
	Date        time.Time       `db:"date"`
	Amount      float64         `db:"amount"`
	Category    string          `db:"category"`
	Type        TransactionType `db:"type"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

// Transaction is the normalized shape the analysis engine consumes.
// Immutable once loaded.
type Transaction struct {
	UserID      string
	Date        time.Time
	Amount      float64
	Category    Category
	Type        TransactionType
	Description string
}
