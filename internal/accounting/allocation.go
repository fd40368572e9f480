package accounting

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AllocationRequest struct {
	InvoiceID       uuid.UUID
	AllocatedAmount decimal.Decimal
}

type AllocatePaymentParams struct {
	OrganizationID uuid.UUID
	PaymentID      uuid.UUID
	AllocatedBy    uuid.UUID
	Allocations    []AllocationRequest
}

type AllocatePaymentResult struct {
	PaymentID         uuid.UUID
	JournalEntryID    uuid.UUID
	AllocatedAmount   decimal.Decimal
	UnallocatedAmount decimal.Decimal
}

// AllocatePayment settles a draft payment against one or more invoices:
// allocation rows are written, each invoice's outstanding amount is
// decremented, the cash movement is journalled, and the payment moves
// to submitted. One database transaction covers the whole batch, and
// every precondition is checked against locked rows before the first
// write, so a rejected batch leaves no rows behind.
func (s *Service) AllocatePayment(ctx context.Context, params AllocatePaymentParams) (*AllocatePaymentResult, error) {
	if len(params.Allocations) == 0 {
		return nil, Validationf("at least one allocation is required")
	}

	total := decimal.Zero

	for i, a := range params.Allocations {
		amount := roundCurrency(a.AllocatedAmount)
		if !amount.IsPositive() {
			return nil, Validationf("allocation %d: amount must be greater than zero", i+1)
		}

		params.Allocations[i].AllocatedAmount = amount
		total = total.Add(amount)
	}

	tx, err := s.repo.BeginLedgerTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin allocation: %w", err)
	}
	defer tx.Rollback()

	payment, err := tx.LockPayment(ctx, params.OrganizationID, params.PaymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status != PaymentStatusDraft {
		return nil, Validationf("only draft payments can be allocated")
	}

	if total.Sub(payment.Amount).Abs().GreaterThan(Tolerance) {
		return nil, Validationf("allocated total %s does not match payment amount %s",
			total.StringFixed(2), payment.Amount.StringFixed(2))
	}

	wantType := expectedInvoiceType(payment.PaymentType)

	// Validate the whole batch against locked invoice rows before the
	// first write.
	for _, a := range params.Allocations {
		inv, err := tx.LockInvoice(ctx, params.OrganizationID, a.InvoiceID)
		if err != nil {
			return nil, err
		}

		if inv.InvoiceType != wantType {
			return nil, Validationf("invoice %s type %s does not match payment type %s",
				inv.InvoiceNumber, inv.InvoiceType, payment.PaymentType)
		}

		if inv.Status != InvoiceStatusSubmitted && inv.Status != InvoiceStatusPartiallyPaid {
			return nil, Validationf("invoice %s is not open for allocation", inv.InvoiceNumber)
		}

		if a.AllocatedAmount.GreaterThan(inv.OutstandingAmount) {
			return nil, Validationf("allocation %s exceeds outstanding balance %s on invoice %s",
				a.AllocatedAmount.StringFixed(2), inv.OutstandingAmount.StringFixed(2), inv.InvoiceNumber)
		}
	}

	allocs := make([]PaymentAllocation, len(params.Allocations))
	for i, a := range params.Allocations {
		allocs[i] = PaymentAllocation{
			PaymentID:       payment.ID,
			InvoiceID:       a.InvoiceID,
			AllocatedAmount: a.AllocatedAmount,
		}
	}

	if err := tx.CreateAllocations(ctx, allocs); err != nil {
		return nil, fmt.Errorf("creating allocations: %w", err)
	}

	for _, a := range params.Allocations {
		// Conditional decrement guarded by outstanding_amount >= amount.
		// The rows are locked, so a zero-row result means the batch
		// over-allocates one invoice through duplicate entries.
		_, settled, err := tx.SettleInvoice(ctx, a.InvoiceID, a.AllocatedAmount)
		if err != nil {
			return nil, fmt.Errorf("settling invoice %s: %w", a.InvoiceID, err)
		}

		if !settled {
			return nil, Validationf("allocations exceed outstanding balance on invoice %s", a.InvoiceID)
		}
	}

	ledgerAccounts, err := s.resolvePaymentAccounts(ctx, tx, payment)
	if err != nil {
		return nil, err
	}

	entry := &JournalEntry{
		OrganizationID:  params.OrganizationID,
		EntryDate:       payment.PaymentDate,
		PostingDate:     payment.PaymentDate,
		ReferenceType:   "Payment",
		ReferenceNumber: payment.PaymentNumber,
		Remarks:         fmt.Sprintf("Payment %s from/to %s", payment.PaymentType, payment.PartyName),
		Status:          JournalStatusDraft,
		CreatedBy:       params.AllocatedBy,
	}

	if err := tx.CreateJournalEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("creating journal entry: %w", err)
	}

	lines, err := BuildPaymentLines(payment, total, entry.ID, ledgerAccounts)
	if err != nil {
		return nil, err
	}

	if err := tx.CreateJournalLines(ctx, lines); err != nil {
		return nil, fmt.Errorf("creating journal lines: %w", err)
	}

	submitted, err := tx.MarkPaymentSubmitted(ctx, payment.ID, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("updating payment status: %w", err)
	}

	if !submitted {
		return nil, Validationf("payment is no longer in draft status")
	}

	if err := tx.PostJournalEntry(ctx, entry.ID, params.AllocatedBy, s.now().UTC()); err != nil {
		return nil, fmt.Errorf("posting journal entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit allocation: %w", err)
	}

	return &AllocatePaymentResult{
		PaymentID:         payment.ID,
		JournalEntryID:    entry.ID,
		AllocatedAmount:   total,
		UnallocatedAmount: payment.Amount.Sub(total),
	}, nil
}

// resolvePaymentAccounts resolves the cash, receivable and payable
// accounts for a payment journal. A payment naming a bank account posts
// its cash line to that account's linked ledger account; a bank account
// without one is a configuration error.
func (s *Service) resolvePaymentAccounts(ctx context.Context, tx LedgerTx, payment *Payment) (PaymentLedgerAccounts, error) {
	var out PaymentLedgerAccounts

	chart, err := tx.AccountsByCode(ctx, payment.OrganizationID, paymentAccountCodes())
	if err != nil {
		return out, fmt.Errorf("resolving accounts: %w", err)
	}

	if payment.PaymentType == PaymentTypeReceive {
		out.ReceivableID, err = chart.Require(CodeReceivable)
	} else {
		out.PayableID, err = chart.Require(CodePayable)
	}

	if err != nil {
		return out, err
	}

	if payment.BankAccountID == nil {
		out.CashID, err = chart.Require(CodeCash)
		if err != nil {
			return out, err
		}

		return out, nil
	}

	bank, err := tx.BankLedgerAccount(ctx, payment.OrganizationID, *payment.BankAccountID)
	if err != nil {
		return out, err
	}

	if bank.LedgerAccountID == nil {
		return out, Validationf("bank account %s missing linked ledger account", bank.Name)
	}

	out.CashID = *bank.LedgerAccountID

	return out, nil
}
