package service

import (
	"context"
	"math"

	"finpulse/internal/dto"
	"finpulse/internal/repository"

	"go.uber.org/zap"
)

// AdminService aggregates audit rows into the statistics surfaced on the
// admin dashboard.
type AdminService struct {
	auditRepo *repository.AuditRepository
	logger    *zap.Logger
}

func NewAdminService(auditRepo *repository.AuditRepository, logger *zap.Logger) *AdminService {
	return &AdminService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (s *AdminService) AllUsers(ctx context.Context) (*dto.AllUsersResponse, error) {
	logs, err := s.auditRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]dto.AuditEntry, 0, len(logs))
	for _, log := range logs {
		users = append(users, dto.AuditEntry{
			UserID:     log.CustomerID,
			Persona:    log.Persona,
			LifeEvent:  log.LifeEvent,
			Product:    log.Product,
			Confidence: log.Confidence,
			Reason:     log.Reason,
			Guardrail:  log.Guardrail,
		})
	}

	return &dto.AllUsersResponse{
		TotalUsers: len(logs),
		Users:      users,
	}, nil
}

func (s *AdminService) DistinctUsers(ctx context.Context) (*dto.DistinctUsersResponse, error) {
	customers, err := s.auditRepo.GetDistinctCustomers(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]dto.DistinctUser, 0, len(customers))
	for _, id := range customers {
		users = append(users, dto.DistinctUser{UserID: id, Name: id})
	}

	return &dto.DistinctUsersResponse{DistinctUsers: users}, nil
}

func (s *AdminService) ConfidenceAnalytics(ctx context.Context) (*dto.ConfidenceAnalyticsResponse, error) {
	avg, err := s.auditRepo.AverageConfidence(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ConfidenceAnalyticsResponse{
		AverageConfidence: math.Round(avg*100) / 100,
	}, nil
}

func (s *AdminService) ProductStats(ctx context.Context) (*dto.ProductStatsResponse, error) {
	products, err := s.auditRepo.CountByColumn(ctx, "product_recommended")
	if err != nil {
		return nil, err
	}

	personas, err := s.auditRepo.CountByColumn(ctx, "persona")
	if err != nil {
		return nil, err
	}

	return &dto.ProductStatsResponse{
		ProductDistribution: products,
		PersonaDistribution: personas,
	}, nil
}

func (s *AdminService) GuardrailBlocks(ctx context.Context) (*dto.GuardrailBlocksResponse, error) {
	logs, err := s.auditRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	blocked, err := s.auditRepo.GetBlocked(ctx)
	if err != nil {
		return nil, err
	}

	cases := make([]dto.AuditEntry, 0, len(blocked))
	for _, log := range blocked {
		cases = append(cases, dto.AuditEntry{
			UserID:     log.CustomerID,
			Persona:    log.Persona,
			LifeEvent:  log.LifeEvent,
			Product:    log.Product,
			Confidence: log.Confidence,
			Reason:     log.Reason,
			Guardrail:  log.Guardrail,
		})
	}

	return &dto.GuardrailBlocksResponse{
		TotalUsers:   len(logs),
		TotalBlocked: len(blocked),
		BlockedCases: cases,
	}, nil
}

// AuditTrail returns the most recent audit rows (admin view, capped at 50).
func (s *AdminService) AuditTrail(ctx context.Context) (*dto.AuditLogResponse, error) {
	logs, err := s.auditRepo.GetRecent(ctx, 50)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.AuditLogEntry, 0, len(logs))
	for _, log := range logs {
		entries = append(entries, dto.AuditLogEntry{
			EmployeeID: log.EmployeeID,
			CustomerID: log.CustomerID,
			Product:    log.Product,
			LifeEvent:  log.LifeEvent,
			Persona:    log.Persona,
			Timestamp:  log.Timestamp.Format("2006-01-02 15:04"),
		})
	}

	return &dto.AuditLogResponse{Logs: entries}, nil
}
