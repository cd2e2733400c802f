// Command seed ingests a Mint-style transaction export into the ledger
// table. Rows with an unknown account, unparseable amount or unparseable
// date are skipped: malformed records are filtered here so the analysis
// engine only ever sees well-typed input.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"finpulse/internal/models"
	"finpulse/internal/repository"
	"finpulse/pkg/config"
	"finpulse/pkg/logger"
	"finpulse/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// accountToUser maps bank export account names to customer identifiers.
var accountToUser = map[string]string{
	"Platinum Card": "user_001",
	"Silver Card":   "user_002",
	"Checking":      "user_003",
}

const dateLayout = "1/02/2006"

func main() {
	csvPath := flag.String("file", "data/transactions.csv", "path to the transaction export")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ledgerRepo := repository.NewLedgerRepository(db, appLogger)

	records, skipped, err := readExport(*csvPath)
	if err != nil {
		appLogger.Fatal("Failed to read transaction export", zap.String("file", *csvPath), zap.Error(err))
	}

	if err := ledgerRepo.CreateBatch(ctx, records); err != nil {
		appLogger.Fatal("Failed to insert ledger rows", zap.Error(err))
	}

	appLogger.Info("Ledger seeding completed",
		zap.Int("inserted", len(records)),
		zap.Int("skipped", skipped),
	)
}

// readExport parses the CSV export into ledger rows, resolving columns by
// header name so column order does not matter.
func readExport(path string) ([]*models.LedgerRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, 0, err
	}
	if len(rows) == 0 {
		return nil, 0, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}

	var records []*models.LedgerRecord
	skipped := 0
	now := time.Now()

	for _, row := range rows[1:] {
		account := row[col["Account Name"]]
		userID, ok := accountToUser[account]
		if !ok {
			skipped++
			continue
		}

		amount, err := strconv.ParseFloat(row[col["Amount"]], 64)
		if err != nil {
			skipped++
			continue
		}

		date, err := time.Parse(dateLayout, row[col["Date"]])
		if err != nil {
			skipped++
			continue
		}

		records = append(records, &models.LedgerRecord{
			ID:          uuid.New(),
			UserID:      userID,
			AccountName: account,
			Date:        date,
			Amount:      amount,
			Category:    row[col["Category"]],
			Type:        models.TransactionType(strings.ToLower(row[col["Transaction Type"]])),
			Description: row[col["Description"]],
			CreatedAt:   now,
		})
	}

	return records, skipped, nil
}
