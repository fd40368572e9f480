package accounting_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldwise/agribooks/internal/accounting"
)

func uuidPtr(u uuid.UUID) *uuid.UUID { return &u }

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

func TestBuildInvoiceLines_Sales(t *testing.T) {
	entryID := uuid.New()
	receivable := uuid.New()
	taxPayable := uuid.New()
	incomeA := uuid.New()
	incomeB := uuid.New()

	inv := &accounting.Invoice{
		InvoiceNumber: "SINV-00007",
		InvoiceType:   accounting.InvoiceTypeSales,
		TaxTotal:      dec("15"),
		GrandTotal:    dec("165"),
		Items: []accounting.InvoiceItem{
			{ID: uuid.New(), ItemName: "Olive oil 5L", Amount: dec("100"), IncomeAccountID: uuidPtr(incomeA)},
			{ID: uuid.New(), ItemName: "Table olives", Amount: dec("50"), IncomeAccountID: uuidPtr(incomeB)},
		},
	}

	lines, err := accounting.BuildInvoiceLines(inv, entryID, accounting.InvoiceLedgerAccounts{
		ReceivableID: receivable,
		TaxPayableID: taxPayable,
	})
	require.NoError(t, err)
	require.Len(t, lines, 4)

	assert.Equal(t, receivable, lines[0].AccountID)
	assert.True(t, lines[0].Debit.Equal(dec("165")), "receivable debit = %s", lines[0].Debit)
	assert.True(t, lines[0].Credit.IsZero())

	assert.Equal(t, incomeA, lines[1].AccountID)
	assert.True(t, lines[1].Credit.Equal(dec("100")))
	assert.Equal(t, incomeB, lines[2].AccountID)
	assert.True(t, lines[2].Credit.Equal(dec("50")))

	assert.Equal(t, taxPayable, lines[3].AccountID)
	assert.True(t, lines[3].Credit.Equal(dec("15")))

	credits := decimal.Zero
	for _, l := range lines[1:] {
		assert.True(t, l.Debit.IsZero())
		credits = credits.Add(l.Credit)
	}

	assert.True(t, credits.Equal(inv.GrandTotal), "credits %s != grand total %s", credits, inv.GrandTotal)

	for _, l := range lines {
		assert.Equal(t, entryID, l.JournalEntryID)
	}
}

func TestBuildInvoiceLines_Purchase(t *testing.T) {
	entryID := uuid.New()
	payable := uuid.New()
	expense := uuid.New()

	inv := &accounting.Invoice{
		InvoiceNumber: "PINV-00003",
		InvoiceType:   accounting.InvoiceTypePurchase,
		TaxTotal:      decimal.Zero,
		GrandTotal:    dec("200"),
		Items: []accounting.InvoiceItem{
			{ID: uuid.New(), ItemName: "Fertilizer", Amount: dec("200"), ExpenseAccountID: uuidPtr(expense)},
		},
	}

	lines, err := accounting.BuildInvoiceLines(inv, entryID, accounting.InvoiceLedgerAccounts{
		PayableID: payable,
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, expense, lines[0].AccountID)
	assert.True(t, lines[0].Debit.Equal(dec("200")))
	assert.Equal(t, payable, lines[1].AccountID)
	assert.True(t, lines[1].Credit.Equal(dec("200")))
}

func TestBuildInvoiceLines_PurchaseWithTax(t *testing.T) {
	entryID := uuid.New()
	payable := uuid.New()
	taxReceivable := uuid.New()
	expense := uuid.New()

	inv := &accounting.Invoice{
		InvoiceNumber: "PINV-00004",
		InvoiceType:   accounting.InvoiceTypePurchase,
		TaxTotal:      dec("40"),
		GrandTotal:    dec("240"),
		Items: []accounting.InvoiceItem{
			{ID: uuid.New(), ItemName: "Irrigation pipe", Amount: dec("200"), ExpenseAccountID: uuidPtr(expense)},
		},
	}

	lines, err := accounting.BuildInvoiceLines(inv, entryID, accounting.InvoiceLedgerAccounts{
		PayableID:       payable,
		TaxReceivableID: taxReceivable,
	})
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, taxReceivable, lines[1].AccountID)
	assert.True(t, lines[1].Debit.Equal(dec("40")))
	assert.True(t, lines[2].Credit.Equal(dec("240")))
}

func TestBuildInvoiceLines_SkipsZeroAmountItems(t *testing.T) {
	income := uuid.New()

	inv := &accounting.Invoice{
		InvoiceNumber: "SINV-00010",
		InvoiceType:   accounting.InvoiceTypeSales,
		GrandTotal:    dec("80"),
		Items: []accounting.InvoiceItem{
			{ID: uuid.New(), ItemName: "Discounted crate", Amount: decimal.Zero, IncomeAccountID: uuidPtr(income)},
			{ID: uuid.New(), ItemName: "Crate", Amount: dec("80"), IncomeAccountID: uuidPtr(income)},
		},
	}

	lines, err := accounting.BuildInvoiceLines(inv, uuid.New(), accounting.InvoiceLedgerAccounts{
		ReceivableID: uuid.New(),
	})
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestBuildInvoiceLines_Errors(t *testing.T) {
	receivable := uuid.New()
	income := uuid.New()

	tests := []struct {
		name     string
		invoice  *accounting.Invoice
		accounts accounting.InvoiceLedgerAccounts
		wantKind accounting.Kind
	}{
		{
			name: "MissingReceivableAccount",
			invoice: &accounting.Invoice{
				InvoiceType: accounting.InvoiceTypeSales,
				GrandTotal:  dec("10"),
			},
			accounts: accounting.InvoiceLedgerAccounts{},
			wantKind: accounting.KindValidation,
		},
		{
			name: "MissingIncomeAccount",
			invoice: &accounting.Invoice{
				InvoiceType: accounting.InvoiceTypeSales,
				GrandTotal:  dec("10"),
				Items:       []accounting.InvoiceItem{{ID: uuid.New(), Amount: dec("10")}},
			},
			accounts: accounting.InvoiceLedgerAccounts{ReceivableID: receivable},
			wantKind: accounting.KindValidation,
		},
		{
			name: "MissingExpenseAccount",
			invoice: &accounting.Invoice{
				InvoiceType: accounting.InvoiceTypePurchase,
				GrandTotal:  dec("10"),
				Items:       []accounting.InvoiceItem{{ID: uuid.New(), Amount: dec("10")}},
			},
			accounts: accounting.InvoiceLedgerAccounts{PayableID: uuid.New()},
			wantKind: accounting.KindValidation,
		},
		{
			name: "MissingTaxPayableAccount",
			invoice: &accounting.Invoice{
				InvoiceType: accounting.InvoiceTypeSales,
				TaxTotal:    dec("2"),
				GrandTotal:  dec("12"),
				Items: []accounting.InvoiceItem{
					{ID: uuid.New(), Amount: dec("10"), IncomeAccountID: uuidPtr(income)},
				},
			},
			accounts: accounting.InvoiceLedgerAccounts{ReceivableID: receivable},
			wantKind: accounting.KindValidation,
		},
		{
			name: "SalesDoesNotBalance",
			invoice: &accounting.Invoice{
				InvoiceNumber: "SINV-00099",
				InvoiceType:   accounting.InvoiceTypeSales,
				GrandTotal:    dec("150"),
				Items: []accounting.InvoiceItem{
					{ID: uuid.New(), Amount: dec("100"), IncomeAccountID: uuidPtr(income)},
				},
			},
			accounts: accounting.InvoiceLedgerAccounts{ReceivableID: receivable},
			wantKind: accounting.KindConsistency,
		},
		{
			name: "PurchaseDoesNotBalance",
			invoice: &accounting.Invoice{
				InvoiceNumber: "PINV-00099",
				InvoiceType:   accounting.InvoiceTypePurchase,
				GrandTotal:    dec("300"),
				Items: []accounting.InvoiceItem{
					{ID: uuid.New(), Amount: dec("100"), ExpenseAccountID: uuidPtr(income)},
				},
			},
			accounts: accounting.InvoiceLedgerAccounts{PayableID: uuid.New()},
			wantKind: accounting.KindConsistency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := accounting.BuildInvoiceLines(tt.invoice, uuid.New(), tt.accounts)
			require.Error(t, err)
			assert.Nil(t, lines)
			assert.Equal(t, tt.wantKind, accounting.KindOf(err))
		})
	}
}

func TestBuildInvoiceLines_RoundsBeforeSumming(t *testing.T) {
	income := uuid.New()

	// 33.333 and 66.667 round to 33.33 and 66.67, which must balance a
	// grand total of 100.00.
	inv := &accounting.Invoice{
		InvoiceNumber: "SINV-00042",
		InvoiceType:   accounting.InvoiceTypeSales,
		GrandTotal:    dec("100.00"),
		Items: []accounting.InvoiceItem{
			{ID: uuid.New(), Amount: dec("33.333"), IncomeAccountID: uuidPtr(income)},
			{ID: uuid.New(), Amount: dec("66.667"), IncomeAccountID: uuidPtr(income)},
		},
	}

	lines, err := accounting.BuildInvoiceLines(inv, uuid.New(), accounting.InvoiceLedgerAccounts{
		ReceivableID: uuid.New(),
	})
	require.NoError(t, err)
	assert.True(t, lines[1].Credit.Equal(dec("33.33")))
	assert.True(t, lines[2].Credit.Equal(dec("66.67")))
}

func TestBuildPaymentLines_Receive(t *testing.T) {
	entryID := uuid.New()
	cash := uuid.New()
	receivable := uuid.New()

	p := &accounting.Payment{
		PaymentType:   accounting.PaymentTypeReceive,
		PaymentMethod: "bank_transfer",
		PartyName:     "Quinta do Vale",
	}

	lines, err := accounting.BuildPaymentLines(p, dec("200"), entryID, accounting.PaymentLedgerAccounts{
		CashID:       cash,
		ReceivableID: receivable,
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, cash, lines[0].AccountID)
	assert.True(t, lines[0].Debit.Equal(dec("200")))
	assert.Equal(t, receivable, lines[1].AccountID)
	assert.True(t, lines[1].Credit.Equal(dec("200")))
}

func TestBuildPaymentLines_Paid(t *testing.T) {
	cash := uuid.New()
	payable := uuid.New()

	p := &accounting.Payment{
		PaymentType:   accounting.PaymentTypePaid,
		PaymentMethod: "cheque",
		PartyName:     "AgroSupplies Lda",
	}

	lines, err := accounting.BuildPaymentLines(p, dec("75.50"), uuid.New(), accounting.PaymentLedgerAccounts{
		CashID:    cash,
		PayableID: payable,
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, payable, lines[0].AccountID)
	assert.True(t, lines[0].Debit.Equal(dec("75.50")))
	assert.Equal(t, cash, lines[1].AccountID)
	assert.True(t, lines[1].Credit.Equal(dec("75.50")))
}

func TestBuildPaymentLines_Errors(t *testing.T) {
	tests := []struct {
		name     string
		payment  *accounting.Payment
		amount   decimal.Decimal
		accounts accounting.PaymentLedgerAccounts
	}{
		{
			name:     "MissingCashAccount",
			payment:  &accounting.Payment{PaymentType: accounting.PaymentTypeReceive},
			amount:   dec("10"),
			accounts: accounting.PaymentLedgerAccounts{ReceivableID: uuid.New()},
		},
		{
			name:     "ZeroAmount",
			payment:  &accounting.Payment{PaymentType: accounting.PaymentTypeReceive},
			amount:   decimal.Zero,
			accounts: accounting.PaymentLedgerAccounts{CashID: uuid.New(), ReceivableID: uuid.New()},
		},
		{
			name:     "NegativeAmount",
			payment:  &accounting.Payment{PaymentType: accounting.PaymentTypePaid},
			amount:   dec("-5"),
			accounts: accounting.PaymentLedgerAccounts{CashID: uuid.New(), PayableID: uuid.New()},
		},
		{
			name:     "MissingReceivable",
			payment:  &accounting.Payment{PaymentType: accounting.PaymentTypeReceive},
			amount:   dec("10"),
			accounts: accounting.PaymentLedgerAccounts{CashID: uuid.New()},
		},
		{
			name:     "MissingPayable",
			payment:  &accounting.Payment{PaymentType: accounting.PaymentTypePaid},
			amount:   dec("10"),
			accounts: accounting.PaymentLedgerAccounts{CashID: uuid.New()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := accounting.BuildPaymentLines(tt.payment, tt.amount, uuid.New(), tt.accounts)
			require.Error(t, err)
			assert.Nil(t, lines)
			assert.Equal(t, accounting.KindValidation, accounting.KindOf(err))
		})
	}
}
