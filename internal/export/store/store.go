package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/fieldwise/agribooks/internal/export"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListPostedLines(ctx context.Context, orgID uuid.UUID, filter export.ListFilter) ([]*export.Line, error) {
	query := `
		SELECT je.id, je.posting_date, je.reference_type, je.reference_number,
			a.code, a.name, ji.debit, ji.credit, COALESCE(ji.description, '')
		FROM journal_items ji
		JOIN journal_entries je ON je.id = ji.journal_entry_id
		JOIN accounts a ON a.id = ji.account_id
		WHERE je.organization_id = $1 AND je.status = 'posted'
	`

	args := []any{orgID}
	argPos := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND je.posting_date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND je.posting_date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	query += " ORDER BY je.posting_date ASC, je.created_at ASC, ji.id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing journal lines: %w", err)
	}
	defer rows.Close()

	var lines []*export.Line

	for rows.Next() {
		var l export.Line

		if err := rows.Scan(
			&l.JournalEntryID, &l.PostingDate, &l.ReferenceType, &l.ReferenceNumber,
			&l.AccountCode, &l.AccountName, &l.Debit, &l.Credit, &l.Description,
		); err != nil {
			return nil, fmt.Errorf("scanning journal line: %w", err)
		}

		lines = append(lines, &l)
	}

	return lines, rows.Err()
}
