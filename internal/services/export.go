package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/petrusjohannesmaas/zaimu/internal/core"
)

// ExportService renders a month's transactions as downloadable CSV.
type ExportService struct {
	transactions *TransactionService
}

func NewExportService(transactions *TransactionService) *ExportService {
	return &ExportService{transactions: transactions}
}

// MonthExport is a fully materialized CSV attachment. Results are small
// enough that streaming is not worth the complexity.
type MonthExport struct {
	Filename string
	Data     []byte
}

// ExportMonth fetches the month listing for username and encodes it as CSV
// with a header line. An empty month returns core.ErrNoTransactions. The
// filename embeds the month's display name; unknown codes get a placeholder.
func (s *ExportService) ExportMonth(ctx context.Context, username, month string) (MonthExport, error) {
	entries, err := s.transactions.ListMonth(ctx, username, month)
	if err != nil {
		return MonthExport{}, err
	}
	if len(entries) == 0 {
		return MonthExport{}, core.ErrNoTransactions
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"amount", "type", "category", "date"}}
	for _, e := range entries {
		records = append(records, []string{
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			e.Type,
			e.Category,
			e.Date,
		})
	}
	if err := w.WriteAll(records); err != nil {
		return MonthExport{}, fmt.Errorf("encode csv: %w", err)
	}

	export := MonthExport{
		Filename: fmt.Sprintf("expenses_%s.csv", core.MonthName(month)),
		Data:     buf.Bytes(),
	}

	slog.InfoContext(ctx, "Month exported",
		"username", username,
		"month", month,
		"rows", len(entries),
		"filename", export.Filename)

	return export, nil
}
