package auth

import (
	"strings"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateToken("emp_42", "Ada", "analyst")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if claims.EmployeeID != "emp_42" || claims.Name != "Ada" || claims.Role != "analyst" {
		t.Errorf("claims round trip failed: %+v", claims)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret-a", time.Hour, 24*time.Hour)
	other := NewJWTManager("secret-b", time.Hour, 24*time.Hour)

	token, err := manager.GenerateToken("emp_42", "Ada", "analyst")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret must not validate")
	}
}

func TestJWTExpired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := manager.GenerateToken("emp_42", "Ada", "analyst")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	if _, err := manager.ValidateToken(token); err == nil {
		t.Error("expired token must not validate")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2-but-longer")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}

	if !CheckPasswordHash("hunter2-but-longer", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("wrong password accepted")
	}
}

func TestPasswordTruncation(t *testing.T) {
	// bcrypt only reads 72 bytes; longer inputs are capped consistently
	long := strings.Repeat("a", 80)
	hash, err := HashPassword(long)
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if !CheckPasswordHash(strings.Repeat("a", 80), hash) {
		t.Error("long password failed its own hash")
	}
	if !CheckPasswordHash(strings.Repeat("a", 75), hash) {
		t.Error("inputs identical in the first 72 bytes must match")
	}
}
