package service

import (
	"context"
	"fmt"
	"time"

	"finpulse/internal/dto"
	"finpulse/internal/engine"
	"finpulse/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LedgerSource supplies a customer's raw transaction rows.
type LedgerSource interface {
	GetByUserID(ctx context.Context, userID string) ([]models.LedgerRecord, error)
}

// AuditStore persists and reads back recommendation audit rows.
type AuditStore interface {
	Create(ctx context.Context, log *models.AuditLog) error
	GetByCustomerID(ctx context.Context, customerID string) ([]models.AuditLog, error)
}

// AnalysisService runs the classification pipeline at the service edge:
// ledger read and audit write happen here, the engine itself stays pure.
type AnalysisService struct {
	ledger    LedgerSource
	audit     AuditStore
	generator MessageGenerator
	logger    *zap.Logger
}

func NewAnalysisService(ledger LedgerSource, audit AuditStore, generator MessageGenerator, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		ledger:    ledger,
		audit:     audit,
		generator: generator,
		logger:    logger,
	}
}

// AnalyzeUser classifies one customer's transaction history, persists the
// audit row and returns the recommendation. Returns engine.ErrNoData when
// the customer has no transactions. A failed or timed-out message
// generation is recovered with the deterministic fallback, never surfaced.
func (s *AnalysisService) AnalyzeUser(ctx context.Context, employeeID, customerID string) (*dto.AnalysisResponse, error) {
	records, err := s.ledger.GetByUserID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	result, err := engine.Analyze(customerID, records)
	if err != nil {
		return nil, err
	}

	message := engine.FallbackMessage(result.Product)
	if s.generator != nil {
		generated, genErr := s.generator.GenerateMessage(ctx, result.Persona, result.Product, result.Reason)
		if genErr != nil {
			s.logger.Warn("Message generation failed, using fallback",
				zap.String("customer_id", customerID),
				zap.Error(genErr),
			)
		} else {
			message = generated
		}
	}

	entry := &models.AuditLog{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		CustomerID:    customerID,
		Product:       string(result.Product),
		LifeEvent:     string(result.LifeEvent),
		Persona:       string(result.Persona),
		Confidence:    result.Confidence,
		Guardrail:     result.Guardrail,
		GuardrailNote: result.GuardrailNote,
		Reason:        result.Reason,
		Timestamp:     time.Now(),
	}
	if err := s.audit.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to write audit log: %w", err)
	}

	s.logger.Info("Analysis completed",
		zap.String("customer_id", customerID),
		zap.String("persona", string(result.Persona)),
		zap.String("product", string(result.Product)),
		zap.String("guardrail", result.Guardrail),
	)

	return &dto.AnalysisResponse{
		UserID:        result.UserID,
		Persona:       string(result.Persona),
		LifeEvent:     string(result.LifeEvent),
		Product:       string(result.Product),
		Confidence:    result.Confidence,
		Reason:        result.Reason,
		Guardrail:     result.Guardrail,
		GuardrailNote: result.GuardrailNote,
		Message:       message,
	}, nil
}

// History returns prior audit rows for a customer, newest first.
func (s *AnalysisService) History(ctx context.Context, customerID string) ([]dto.HistoryEntry, error) {
	logs, err := s.audit.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}

	entries := make([]dto.HistoryEntry, 0, len(logs))
	for _, log := range logs {
		entries = append(entries, dto.HistoryEntry{
			UserID:        log.CustomerID,
			Persona:       log.Persona,
			LifeEvent:     log.LifeEvent,
			Product:       log.Product,
			Confidence:    log.Confidence,
			Reason:        log.Reason,
			Guardrail:     log.Guardrail,
			GuardrailNote: log.GuardrailNote,
			Timestamp:     log.Timestamp.Format("2006-01-02 15:04"),
		})
	}

	return entries, nil
}
