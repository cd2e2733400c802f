package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAnalyst Role = "analyst"
	RoleAdmin   Role = "admin"
	RoleViewer  Role = "viewer"
)

// User is a bank employee account (analyst by default).
type User struct {
	ID           uuid.UUID `db:"id"`
	EmployeeID   string    `db:"employee_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}
