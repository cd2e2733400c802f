package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records a surfaced recommendation for compliance review.
// EmployeeID is the analyst who ran the analysis, CustomerID the subject.
type AuditLog struct {
	ID            uuid.UUID `db:"id"`
	EmployeeID    string    `db:"employee_id"`
	CustomerID    string    `db:"customer_id"`
	Product       string    `db:"product_recommended"`
	LifeEvent     string    `db:"life_event"`
	Persona       string    `db:"persona"`
	Confidence    int       `db:"confidence"`
	Guardrail     string    `db:"guardrail"`
	GuardrailNote string    `db:"guardrail_note"`
	Reason        string    `db:"reason"`
	Timestamp     time.Time `db:"timestamp"`
}
