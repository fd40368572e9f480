package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListFilter bounds an export by posting date. Nil bounds are open.
type ListFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Line is one journal item flattened with its entry header and account,
// ready to become a spreadsheet row.
type Line struct {
	JournalEntryID  uuid.UUID
	PostingDate     time.Time
	ReferenceType   string
	ReferenceNumber string
	AccountCode     string
	AccountName     string
	Debit           decimal.Decimal
	Credit          decimal.Decimal
	Description     string
}

type Repository interface {
	ListPostedLines(ctx context.Context, orgID uuid.UUID, filter ListFilter) ([]*Line, error)
}

// Service produces the journal exports accountants pull at period end.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Export returns the posted journal lines for the organization within
// the filter window, ordered by posting date.
func (s *Service) Export(ctx context.Context, orgID uuid.UUID, filter ListFilter) ([]*Line, error) {
	lines, err := s.repo.ListPostedLines(ctx, orgID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing journal lines: %w", err)
	}

	return lines, nil
}

var csvHeader = []string{
	"posting_date", "reference_type", "reference_number",
	"account_code", "account_name", "debit", "credit", "description",
}

// WriteCSV renders the lines as a CSV document with a header row.
func (s *Service) WriteCSV(w io.Writer, lines []*Line) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, l := range lines {
		record := []string{
			l.PostingDate.Format(time.DateOnly),
			l.ReferenceType,
			l.ReferenceNumber,
			l.AccountCode,
			l.AccountName,
			l.Debit.StringFixed(2),
			l.Credit.StringFixed(2),
			l.Description,
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// GenerateSummary creates a plain-text recap of the export, one line
// per journal item plus closing totals.
func (s *Service) GenerateSummary(lines []*Line) string {
	var sb strings.Builder

	debits := decimal.Zero
	credits := decimal.Zero
	entries := make(map[uuid.UUID]struct{})

	for _, l := range lines {
		date := l.PostingDate.Format(time.DateOnly)

		side := "D"
		amount := l.Debit
		if l.Credit.IsPositive() {
			side = "C"
			amount = l.Credit
		}

		sb.WriteString(fmt.Sprintf("* %s | %s | %s %s | %s %s €\n",
			date, l.ReferenceNumber, l.AccountCode, l.AccountName, side, amount.StringFixed(2)))

		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
		entries[l.JournalEntryID] = struct{}{}
	}

	sb.WriteString(fmt.Sprintf("Entries: %d | Debits: %s € | Credits: %s €\n",
		len(entries), debits.StringFixed(2), credits.StringFixed(2)))

	return sb.String()
}
