package repository

import (
	"context"

	"finpulse/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var auditColumns = []string{
	"id", "employee_id", "customer_id", "product_recommended", "life_event",
	"persona", "confidence", "guardrail", "guardrail_note", "reason", "timestamp",
}

type AuditRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAuditRepository(db *pgxpool.Pool, logger *zap.Logger) *AuditRepository {
	return &AuditRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AuditRepository) Create(ctx context.Context, log *models.AuditLog) error {
	query := squirrel.Insert("audit_logs").
		Columns(auditColumns...).
		Values(log.ID, log.EmployeeID, log.CustomerID, log.Product, log.LifeEvent,
			log.Persona, log.Confidence, log.Guardrail, log.GuardrailNote, log.Reason, log.Timestamp).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *AuditRepository) GetByCustomerID(ctx context.Context, customerID string) ([]models.AuditLog, error) {
	query := squirrel.Select(auditColumns...).
		From("audit_logs").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryLogs(ctx, query)
}

func (r *AuditRepository) GetAll(ctx context.Context) ([]models.AuditLog, error) {
	query := squirrel.Select(auditColumns...).
		From("audit_logs").
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryLogs(ctx, query)
}

func (r *AuditRepository) GetBlocked(ctx context.Context) ([]models.AuditLog, error) {
	query := squirrel.Select(auditColumns...).
		From("audit_logs").
		Where(squirrel.Eq{"guardrail": "blocked"}).
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryLogs(ctx, query)
}

func (r *AuditRepository) GetRecent(ctx context.Context, limit uint64) ([]models.AuditLog, error) {
	query := squirrel.Select(auditColumns...).
		From("audit_logs").
		OrderBy("timestamp DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryLogs(ctx, query)
}

func (r *AuditRepository) GetDistinctCustomers(ctx context.Context) ([]string, error) {
	query := squirrel.Select("DISTINCT customer_id").
		From("audit_logs").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		customers = append(customers, id)
	}

	return customers, rows.Err()
}

// AverageConfidence returns the mean confidence over all audit rows, 0 when
// the table is empty.
func (r *AuditRepository) AverageConfidence(ctx context.Context) (float64, error) {
	query := squirrel.Select("COALESCE(AVG(confidence), 0)").
		From("audit_logs").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var avg float64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}

// CountByColumn returns row counts grouped by the given audit column
// (product_recommended or persona distributions).
func (r *AuditRepository) CountByColumn(ctx context.Context, column string) (map[string]int, error) {
	query := squirrel.Select(column, "COUNT(*)").
		From("audit_logs").
		GroupBy(column).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var value string
		var count int
		if err := rows.Scan(&value, &count); err != nil {
			return nil, err
		}
		counts[value] = count
	}

	return counts, rows.Err()
}

func (r *AuditRepository) queryLogs(ctx context.Context, query squirrel.SelectBuilder) ([]models.AuditLog, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.AuditLog
	for rows.Next() {
		var log models.AuditLog
		if err := rows.Scan(
			&log.ID, &log.EmployeeID, &log.CustomerID, &log.Product, &log.LifeEvent,
			&log.Persona, &log.Confidence, &log.Guardrail, &log.GuardrailNote, &log.Reason, &log.Timestamp,
		); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}
