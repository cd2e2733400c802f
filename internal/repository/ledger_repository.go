package repository

import (
	"context"

	"finpulse/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// LedgerRepository reads and writes raw transaction rows. Category labels
// stay in source form here; canonicalization happens in the engine loader.
type LedgerRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewLedgerRepository(db *pgxpool.Pool, logger *zap.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *LedgerRepository) CreateBatch(ctx context.Context, records []*models.LedgerRecord) error {
	if len(records) == 0 {
		return nil
	}

	builder := squirrel.Insert("ledger").
		Columns("id", "user_id", "account_name", "date", "amount", "category", "type", "description", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, rec := range records {
		builder = builder.Values(rec.ID, rec.UserID, rec.AccountName, rec.Date, rec.Amount, rec.Category, rec.Type, rec.Description, rec.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// GetByUserID returns the user's ledger rows in ingestion order.
func (r *LedgerRepository) GetByUserID(ctx context.Context, userID string) ([]models.LedgerRecord, error) {
	query := squirrel.Select("id", "user_id", "account_name", "date", "amount", "category", "type", "description", "created_at").
		From("ledger").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
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

	var records []models.LedgerRecord
	for rows.Next() {
		var rec models.LedgerRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.AccountName, &rec.Date, &rec.Amount, &rec.Category, &rec.Type, &rec.Description, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
