package accounting

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceLedgerAccounts holds the resolved account ids BuildInvoiceLines
// needs. Only the ids relevant to the invoice type have to be set;
// uuid.Nil marks an unresolved account.
type InvoiceLedgerAccounts struct {
	ReceivableID    uuid.UUID
	PayableID       uuid.UUID
	TaxPayableID    uuid.UUID
	TaxReceivableID uuid.UUID
}

// PaymentLedgerAccounts holds the resolved account ids
// BuildPaymentLines needs. CashID is either the default cash account or
// the ledger account linked to the payment's bank account.
type PaymentLedgerAccounts struct {
	CashID       uuid.UUID
	ReceivableID uuid.UUID
	PayableID    uuid.UUID
}

// BuildInvoiceLines turns an invoice into a balanced set of journal
// lines attached to entryID. Pure: no I/O, deterministic for a given
// input.
//
// Sales: debit Receivable for the grand total, credit each item's
// income account, credit Tax Payable for a positive tax total.
// Purchase is the mirror image on the debit side against Payable.
// Zero-amount items are skipped. If the per-line total does not come
// back to the grand total the invoice data itself is corrupt and a
// consistency error is returned.
func BuildInvoiceLines(inv *Invoice, entryID uuid.UUID, accounts InvoiceLedgerAccounts) ([]JournalLine, error) {
	grandTotal := roundCurrency(inv.GrandTotal)
	taxTotal := roundCurrency(inv.TaxTotal)

	if inv.InvoiceType == InvoiceTypeSales {
		return buildSalesLines(inv, entryID, accounts, grandTotal, taxTotal)
	}

	return buildPurchaseLines(inv, entryID, accounts, grandTotal, taxTotal)
}

func buildSalesLines(inv *Invoice, entryID uuid.UUID, accounts InvoiceLedgerAccounts, grandTotal, taxTotal decimal.Decimal) ([]JournalLine, error) {
	if accounts.ReceivableID == uuid.Nil {
		return nil, Validationf("missing accounts receivable account")
	}

	lines := []JournalLine{{
		JournalEntryID: entryID,
		AccountID:      accounts.ReceivableID,
		Debit:          grandTotal,
		Description:    fmt.Sprintf("Invoice %s receivable", inv.InvoiceNumber),
	}}

	credits := decimal.Zero

	for _, item := range inv.Items {
		if item.IncomeAccountID == nil {
			return nil, Validationf("invoice item %s missing income account", item.ID)
		}

		amount := roundCurrency(item.Amount)
		if amount.IsZero() {
			continue
		}

		lines = append(lines, JournalLine{
			JournalEntryID: entryID,
			AccountID:      *item.IncomeAccountID,
			Credit:         amount,
			CostCenterID:   item.CostCenterID,
			Description:    item.ItemName,
		})
		credits = credits.Add(amount)
	}

	if taxTotal.IsPositive() {
		if accounts.TaxPayableID == uuid.Nil {
			return nil, Validationf("missing tax payable account for sales invoice")
		}

		lines = append(lines, JournalLine{
			JournalEntryID: entryID,
			AccountID:      accounts.TaxPayableID,
			Credit:         taxTotal,
			Description:    fmt.Sprintf("Sales tax for %s", inv.InvoiceNumber),
		})
		credits = credits.Add(taxTotal)
	}

	if !roundCurrency(credits).Equal(grandTotal) {
		return nil, Consistencyf("sales invoice %s debits and credits do not balance", inv.InvoiceNumber)
	}

	return lines, nil
}

func buildPurchaseLines(inv *Invoice, entryID uuid.UUID, accounts InvoiceLedgerAccounts, grandTotal, taxTotal decimal.Decimal) ([]JournalLine, error) {
	if accounts.PayableID == uuid.Nil {
		return nil, Validationf("missing accounts payable account")
	}

	var lines []JournalLine

	debits := decimal.Zero

	for _, item := range inv.Items {
		if item.ExpenseAccountID == nil {
			return nil, Validationf("invoice item %s missing expense account", item.ID)
		}

		amount := roundCurrency(item.Amount)
		if amount.IsZero() {
			continue
		}

		lines = append(lines, JournalLine{
			JournalEntryID: entryID,
			AccountID:      *item.ExpenseAccountID,
			Debit:          amount,
			CostCenterID:   item.CostCenterID,
			Description:    item.ItemName,
		})
		debits = debits.Add(amount)
	}

	if taxTotal.IsPositive() {
		if accounts.TaxReceivableID == uuid.Nil {
			return nil, Validationf("missing tax receivable account for purchase invoice")
		}

		lines = append(lines, JournalLine{
			JournalEntryID: entryID,
			AccountID:      accounts.TaxReceivableID,
			Debit:          taxTotal,
			Description:    fmt.Sprintf("Purchase tax for %s", inv.InvoiceNumber),
		})
		debits = debits.Add(taxTotal)
	}

	lines = append(lines, JournalLine{
		JournalEntryID: entryID,
		AccountID:      accounts.PayableID,
		Credit:         grandTotal,
		Description:    fmt.Sprintf("Invoice %s payable", inv.InvoiceNumber),
	})

	if !roundCurrency(debits).Equal(grandTotal) {
		return nil, Consistencyf("purchase invoice %s debits and credits do not balance", inv.InvoiceNumber)
	}

	return lines, nil
}

// BuildPaymentLines turns a settled payment amount into the two-line
// journal for entryID. amount is the total allocated in the batch, not
// necessarily the payment's face amount. Pure, like BuildInvoiceLines.
func BuildPaymentLines(p *Payment, amount decimal.Decimal, entryID uuid.UUID, accounts PaymentLedgerAccounts) ([]JournalLine, error) {
	if accounts.CashID == uuid.Nil {
		return nil, Validationf("missing cash/bank ledger account")
	}

	amount = roundCurrency(amount)
	if !amount.IsPositive() {
		return nil, Validationf("payment amount must be greater than zero")
	}

	if p.PaymentType == PaymentTypeReceive {
		if accounts.ReceivableID == uuid.Nil {
			return nil, Validationf("missing accounts receivable account")
		}

		return []JournalLine{
			{
				JournalEntryID: entryID,
				AccountID:      accounts.CashID,
				Debit:          amount,
				Description:    fmt.Sprintf("Payment received via %s", p.PaymentMethod),
			},
			{
				JournalEntryID: entryID,
				AccountID:      accounts.ReceivableID,
				Credit:         amount,
				Description:    fmt.Sprintf("Payment from %s", p.PartyName),
			},
		}, nil
	}

	if accounts.PayableID == uuid.Nil {
		return nil, Validationf("missing accounts payable account")
	}

	return []JournalLine{
		{
			JournalEntryID: entryID,
			AccountID:      accounts.PayableID,
			Debit:          amount,
			Description:    fmt.Sprintf("Payment to %s", p.PartyName),
		},
		{
			JournalEntryID: entryID,
			AccountID:      accounts.CashID,
			Credit:         amount,
			Description:    fmt.Sprintf("Payment made via %s", p.PaymentMethod),
		},
	}, nil
}
