package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fieldwise/agribooks/internal/accounting"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx so the row readers
// can run inside or outside a ledger transaction.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectInvoiceColumns = `
	i.id, i.organization_id, i.invoice_number, i.invoice_type, i.party_name,
	i.invoice_date, i.due_date, i.subtotal, i.tax_total, i.grand_total,
	i.outstanding_amount, i.status, i.journal_entry_id, i.remarks,
	i.created_by, i.created_at, i.updated_at
`

func scanInvoice(s scanner) (*accounting.Invoice, error) {
	var inv accounting.Invoice

	var typeStr, statusStr string

	var remarks sql.NullString

	if err := s.Scan(
		&inv.ID, &inv.OrganizationID, &inv.InvoiceNumber, &typeStr, &inv.PartyName,
		&inv.InvoiceDate, &inv.DueDate, &inv.Subtotal, &inv.TaxTotal, &inv.GrandTotal,
		&inv.OutstandingAmount, &statusStr, &inv.JournalEntryID, &remarks,
		&inv.CreatedBy, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.InvoiceType = accounting.InvoiceType(typeStr)
	inv.Status = accounting.InvoiceStatus(statusStr)
	inv.Remarks = remarks.String

	return &inv, nil
}

func loadInvoiceItems(ctx context.Context, q querier, inv *accounting.Invoice) error {
	query := `
		SELECT id, invoice_id, item_name, description, quantity, rate, amount,
			tax_amount, income_account_id, expense_account_id, cost_center_id
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.QueryContext(ctx, query, inv.ID)
	if err != nil {
		return fmt.Errorf("listing invoice items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item accounting.InvoiceItem

		var description sql.NullString

		if err := rows.Scan(
			&item.ID, &item.InvoiceID, &item.ItemName, &description,
			&item.Quantity, &item.Rate, &item.Amount, &item.TaxAmount,
			&item.IncomeAccountID, &item.ExpenseAccountID, &item.CostCenterID,
		); err != nil {
			return fmt.Errorf("scanning invoice item: %w", err)
		}

		item.Description = description.String
		inv.Items = append(inv.Items, item)
	}

	return rows.Err()
}

func getInvoice(ctx context.Context, q querier, orgID, id uuid.UUID, lock bool) (*accounting.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		WHERE i.id = $1 AND i.organization_id = $2`
	if lock {
		query += " FOR UPDATE"
	}

	inv, err := scanInvoice(q.QueryRowContext(ctx, query, id, orgID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, accounting.NotFoundf("invoice not found")
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	if err := loadInvoiceItems(ctx, q, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

const selectPaymentColumns = `
	p.id, p.organization_id, p.payment_number, p.payment_type, p.payment_method,
	p.payment_date, p.party_name, p.amount, p.status, p.bank_account_id,
	p.journal_entry_id, p.created_at, p.updated_at
`

func getPayment(ctx context.Context, q querier, orgID, id uuid.UUID, lock bool) (*accounting.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + `
		FROM accounting_payments p
		WHERE p.id = $1 AND p.organization_id = $2`
	if lock {
		query += " FOR UPDATE"
	}

	var p accounting.Payment

	var typeStr, statusStr string

	err := q.QueryRowContext(ctx, query, id, orgID).Scan(
		&p.ID, &p.OrganizationID, &p.PaymentNumber, &typeStr, &p.PaymentMethod,
		&p.PaymentDate, &p.PartyName, &p.Amount, &statusStr, &p.BankAccountID,
		&p.JournalEntryID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, accounting.NotFoundf("payment not found")
		}

		return nil, fmt.Errorf("getting payment: %w", err)
	}

	p.PaymentType = accounting.PaymentType(typeStr)
	p.Status = accounting.PaymentStatus(statusStr)

	return &p, nil
}

func accountsByCode(ctx context.Context, q querier, orgID uuid.UUID, codes []accounting.AccountCode) (accounting.ChartAccounts, error) {
	if len(codes) == 0 {
		return accounting.ChartAccounts{}, nil
	}

	placeholders := make([]string, len(codes))
	args := make([]any, 0, len(codes)+1)
	args = append(args, orgID)

	for i, code := range codes {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, string(code))
	}

	query := `
		SELECT id, code
		FROM accounts
		WHERE organization_id = $1 AND code IN (` + strings.Join(placeholders, ", ") + `)
	`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing accounts by code: %w", err)
	}
	defer rows.Close()

	chart := make(accounting.ChartAccounts, len(codes))

	for rows.Next() {
		var id uuid.UUID

		var code string

		if err := rows.Scan(&id, &code); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		chart[accounting.AccountCode(code)] = id
	}

	return chart, rows.Err()
}

func (s *Store) GetInvoice(ctx context.Context, orgID, id uuid.UUID) (*accounting.Invoice, error) {
	return getInvoice(ctx, s.db, orgID, id, false)
}

func (s *Store) GetPayment(ctx context.Context, orgID, id uuid.UUID) (*accounting.Payment, error) {
	return getPayment(ctx, s.db, orgID, id, false)
}

func (s *Store) ListAccounts(ctx context.Context, orgID uuid.UUID) ([]*accounting.Account, error) {
	query := `
		SELECT id, organization_id, code, name, created_at
		FROM accounts
		WHERE organization_id = $1
		ORDER BY code ASC
	`

	rows, err := s.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*accounting.Account

	for rows.Next() {
		var acc accounting.Account

		var code string

		if err := rows.Scan(&acc.ID, &acc.OrganizationID, &code, &acc.Name, &acc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		acc.Code = accounting.AccountCode(code)
		accounts = append(accounts, &acc)
	}

	return accounts, rows.Err()
}

// numberLockKey serializes document-number generation per organization
// and document type.
func numberLockKey(orgID uuid.UUID, docType string) int64 {
	h := fnv.New64a()
	h.Write(orgID[:])
	h.Write([]byte{0})
	h.Write([]byte(docType))

	return int64(h.Sum64())
}

func nextInvoiceNumber(ctx context.Context, tx *sql.Tx, orgID uuid.UUID, t accounting.InvoiceType) (string, error) {
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", numberLockKey(orgID, string(t))); err != nil {
		return "", fmt.Errorf("acquiring invoice number lock: %w", err)
	}

	var count int64
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM invoices WHERE organization_id = $1 AND invoice_type = $2",
		orgID, string(t),
	).Scan(&count); err != nil {
		return "", fmt.Errorf("counting invoices: %w", err)
	}

	prefix := "SINV"
	if t == accounting.InvoiceTypePurchase {
		prefix = "PINV"
	}

	return fmt.Sprintf("%s-%05d", prefix, count+1), nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv *accounting.Invoice) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	number, err := nextInvoiceNumber(ctx, tx, inv.OrganizationID, inv.InvoiceType)
	if err != nil {
		return err
	}

	inv.InvoiceNumber = number

	query := `
		INSERT INTO invoices (organization_id, invoice_number, invoice_type, party_name,
			invoice_date, due_date, subtotal, tax_total, grand_total, outstanding_amount,
			status, remarks, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, query,
		inv.OrganizationID,
		inv.InvoiceNumber,
		inv.InvoiceType,
		inv.PartyName,
		inv.InvoiceDate,
		inv.DueDate,
		inv.Subtotal,
		inv.TaxTotal,
		inv.GrandTotal,
		inv.OutstandingAmount,
		inv.Status,
		inv.Remarks,
		inv.CreatedBy,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	itemQuery := `
		INSERT INTO invoice_items (invoice_id, item_name, description, quantity, rate,
			amount, tax_amount, income_account_id, expense_account_id, cost_center_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id
	`

	for i := range inv.Items {
		item := &inv.Items[i]
		item.InvoiceID = inv.ID

		err := tx.QueryRowContext(ctx, itemQuery,
			item.InvoiceID,
			item.ItemName,
			item.Description,
			item.Quantity,
			item.Rate,
			item.Amount,
			item.TaxAmount,
			item.IncomeAccountID,
			item.ExpenseAccountID,
			item.CostCenterID,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("creating invoice item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing invoice: %w", err)
	}

	return nil
}

type ledgerTx struct {
	tx *sql.Tx
}

func (s *Store) BeginLedgerTx(ctx context.Context) (accounting.LedgerTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning ledger tx: %w", err)
	}

	return &ledgerTx{tx: tx}, nil
}

func (ltx *ledgerTx) Commit() error   { return ltx.tx.Commit() }
func (ltx *ledgerTx) Rollback() error { return ltx.tx.Rollback() }

func (ltx *ledgerTx) LockInvoice(ctx context.Context, orgID, id uuid.UUID) (*accounting.Invoice, error) {
	return getInvoice(ctx, ltx.tx, orgID, id, true)
}

func (ltx *ledgerTx) LockPayment(ctx context.Context, orgID, id uuid.UUID) (*accounting.Payment, error) {
	return getPayment(ctx, ltx.tx, orgID, id, true)
}

func (ltx *ledgerTx) AccountsByCode(ctx context.Context, orgID uuid.UUID, codes []accounting.AccountCode) (accounting.ChartAccounts, error) {
	return accountsByCode(ctx, ltx.tx, orgID, codes)
}

func (ltx *ledgerTx) BankLedgerAccount(ctx context.Context, orgID, bankAccountID uuid.UUID) (*accounting.BankAccount, error) {
	query := `
		SELECT id, organization_id, name, ledger_account_id
		FROM bank_accounts
		WHERE id = $1 AND organization_id = $2
	`

	var bank accounting.BankAccount

	err := ltx.tx.QueryRowContext(ctx, query, bankAccountID, orgID).Scan(
		&bank.ID, &bank.OrganizationID, &bank.Name, &bank.LedgerAccountID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, accounting.NotFoundf("bank account not found")
		}

		return nil, fmt.Errorf("getting bank account: %w", err)
	}

	return &bank, nil
}

func (ltx *ledgerTx) CreateJournalEntry(ctx context.Context, entry *accounting.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (organization_id, entry_date, posting_date,
			reference_type, reference_number, remarks, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := ltx.tx.QueryRowContext(ctx, query,
		entry.OrganizationID,
		entry.EntryDate,
		entry.PostingDate,
		entry.ReferenceType,
		entry.ReferenceNumber,
		entry.Remarks,
		entry.Status,
		entry.CreatedBy,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating journal entry: %w", err)
	}

	return nil
}

func (ltx *ledgerTx) CreateJournalLines(ctx context.Context, lines []accounting.JournalLine) error {
	query := `
		INSERT INTO journal_items (journal_entry_id, account_id, debit, credit,
			cost_center_id, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	for i := range lines {
		line := &lines[i]

		err := ltx.tx.QueryRowContext(ctx, query,
			line.JournalEntryID,
			line.AccountID,
			line.Debit,
			line.Credit,
			line.CostCenterID,
			line.Description,
		).Scan(&line.ID)
		if err != nil {
			return fmt.Errorf("creating journal line: %w", err)
		}
	}

	return nil
}

func (ltx *ledgerTx) PostJournalEntry(ctx context.Context, id, postedBy uuid.UUID, postedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = 'posted', posted_by = $1, posted_at = $2
		WHERE id = $3 AND status = 'draft'
	`

	res, err := ltx.tx.ExecContext(ctx, query, postedBy, postedAt, id)
	if err != nil {
		return fmt.Errorf("posting journal entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("posting journal entry: %w", err)
	}

	if affected == 0 {
		return accounting.Validationf("journal entry is not in draft status")
	}

	return nil
}

// MarkInvoiceSubmitted performs the draft -> submitted transition as a
// conditional update. The false return means the invoice was not in
// draft anymore, which makes double-posting impossible even without
// the row lock.
func (ltx *ledgerTx) MarkInvoiceSubmitted(ctx context.Context, id, entryID uuid.UUID) (bool, error) {
	query := `
		UPDATE invoices
		SET status = 'submitted', journal_entry_id = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'draft'
	`

	res, err := ltx.tx.ExecContext(ctx, query, entryID, id)
	if err != nil {
		return false, fmt.Errorf("marking invoice submitted: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("marking invoice submitted: %w", err)
	}

	return affected > 0, nil
}

func (ltx *ledgerTx) CreateAllocations(ctx context.Context, allocs []accounting.PaymentAllocation) error {
	query := `
		INSERT INTO payment_allocations (payment_id, invoice_id, allocated_amount, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	for i := range allocs {
		alloc := &allocs[i]

		err := ltx.tx.QueryRowContext(ctx, query,
			alloc.PaymentID,
			alloc.InvoiceID,
			alloc.AllocatedAmount,
		).Scan(&alloc.ID, &alloc.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating payment allocation: %w", err)
		}
	}

	return nil
}

// SettleInvoice decrements the outstanding amount and derives the new
// status in a single conditional update. The guard keeps the balance
// from ever going negative; zero rows affected reports settled=false.
func (ltx *ledgerTx) SettleInvoice(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (accounting.InvoiceStatus, bool, error) {
	query := `
		UPDATE invoices
		SET outstanding_amount = outstanding_amount - $1,
			status = CASE WHEN outstanding_amount - $1 <= 0.01 THEN 'paid' ELSE 'partially_paid' END,
			updated_at = NOW()
		WHERE id = $2 AND outstanding_amount >= $1
		RETURNING status
	`

	var statusStr string

	err := ltx.tx.QueryRowContext(ctx, query, amount, id).Scan(&statusStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}

		return "", false, fmt.Errorf("settling invoice: %w", err)
	}

	return accounting.InvoiceStatus(statusStr), true, nil
}

func (ltx *ledgerTx) MarkPaymentSubmitted(ctx context.Context, id, entryID uuid.UUID) (bool, error) {
	query := `
		UPDATE accounting_payments
		SET status = 'submitted', journal_entry_id = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'draft'
	`

	res, err := ltx.tx.ExecContext(ctx, query, entryID, id)
	if err != nil {
		return false, fmt.Errorf("marking payment submitted: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("marking payment submitted: %w", err)
	}

	return affected > 0, nil
}
