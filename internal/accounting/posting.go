package accounting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PostInvoiceParams struct {
	OrganizationID uuid.UUID
	InvoiceID      uuid.UUID
	PostingDate    time.Time
	PostedBy       uuid.UUID
}

type PostInvoiceResult struct {
	InvoiceID      uuid.UUID
	JournalEntryID uuid.UUID
}

// PostInvoice transitions a draft invoice to submitted and records the
// matching posted journal entry. The whole unit runs inside one
// database transaction: invoice row locked on read, journal entry and
// lines inserted, invoice flipped draft -> submitted by a conditional
// update, entry flipped draft -> posted. Any failure rolls everything
// back, so a half-posted journal can never outlive the request.
func (s *Service) PostInvoice(ctx context.Context, params PostInvoiceParams) (*PostInvoiceResult, error) {
	tx, err := s.repo.BeginLedgerTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin posting: %w", err)
	}
	defer tx.Rollback()

	inv, err := tx.LockInvoice(ctx, params.OrganizationID, params.InvoiceID)
	if err != nil {
		return nil, err
	}

	if inv.Status != InvoiceStatusDraft {
		return nil, Validationf("only draft invoices can be posted")
	}

	accounts, err := tx.AccountsByCode(ctx, params.OrganizationID, invoiceAccountCodes(inv.InvoiceType))
	if err != nil {
		return nil, fmt.Errorf("resolving accounts: %w", err)
	}

	ledgerAccounts, err := invoiceLedgerAccounts(inv, accounts)
	if err != nil {
		return nil, err
	}

	entry := &JournalEntry{
		OrganizationID:  params.OrganizationID,
		EntryDate:       params.PostingDate,
		PostingDate:     params.PostingDate,
		ReferenceType:   invoiceReferenceType(inv.InvoiceType),
		ReferenceNumber: inv.InvoiceNumber,
		Remarks:         fmt.Sprintf("Journal entry for %s invoice %s", inv.InvoiceType, inv.InvoiceNumber),
		Status:          JournalStatusDraft,
		CreatedBy:       params.PostedBy,
	}

	if err := tx.CreateJournalEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("creating journal entry: %w", err)
	}

	lines, err := BuildInvoiceLines(inv, entry.ID, ledgerAccounts)
	if err != nil {
		return nil, err
	}

	if err := tx.CreateJournalLines(ctx, lines); err != nil {
		return nil, fmt.Errorf("creating journal lines: %w", err)
	}

	submitted, err := tx.MarkInvoiceSubmitted(ctx, inv.ID, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("updating invoice status: %w", err)
	}

	if !submitted {
		// Row is locked, so this means the status changed between the
		// check and the update inside our own transaction. Treat it as
		// a lost race either way.
		return nil, Validationf("invoice is no longer in draft status")
	}

	if err := tx.PostJournalEntry(ctx, entry.ID, params.PostedBy, s.now().UTC()); err != nil {
		return nil, fmt.Errorf("posting journal entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit posting: %w", err)
	}

	return &PostInvoiceResult{InvoiceID: inv.ID, JournalEntryID: entry.ID}, nil
}

// invoiceLedgerAccounts narrows the resolved chart to the account set
// the line builder needs for this invoice. Required codes fail here;
// tax accounts stay optional because the builder only demands them for
// a positive tax total.
func invoiceLedgerAccounts(inv *Invoice, chart ChartAccounts) (InvoiceLedgerAccounts, error) {
	var out InvoiceLedgerAccounts

	if inv.InvoiceType == InvoiceTypeSales {
		id, err := chart.Require(CodeReceivable)
		if err != nil {
			return out, err
		}

		out.ReceivableID = id
		out.TaxPayableID = chart[CodeTaxPayable]

		return out, nil
	}

	id, err := chart.Require(CodePayable)
	if err != nil {
		return out, err
	}

	out.PayableID = id
	out.TaxReceivableID = chart[CodeTaxReceivable]

	return out, nil
}

func invoiceReferenceType(t InvoiceType) string {
	if t == InvoiceTypeSales {
		return "Sales Invoice"
	}

	return "Purchase Invoice"
}
