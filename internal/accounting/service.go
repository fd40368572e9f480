package accounting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=accounting
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, orgID, id uuid.UUID) (*Invoice, error)
	GetPayment(ctx context.Context, orgID, id uuid.UUID) (*Payment, error)
	ListAccounts(ctx context.Context, orgID uuid.UUID) ([]*Account, error)

	BeginLedgerTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is one atomic posting unit. Every read inside it locks the
// rows it returns, so the draft-status preconditions are checked and
// consumed under the same transaction that writes the journal.
type LedgerTx interface {
	LockInvoice(ctx context.Context, orgID, id uuid.UUID) (*Invoice, error)
	LockPayment(ctx context.Context, orgID, id uuid.UUID) (*Payment, error)
	AccountsByCode(ctx context.Context, orgID uuid.UUID, codes []AccountCode) (ChartAccounts, error)
	BankLedgerAccount(ctx context.Context, orgID, bankAccountID uuid.UUID) (*BankAccount, error)

	CreateJournalEntry(ctx context.Context, entry *JournalEntry) error
	CreateJournalLines(ctx context.Context, lines []JournalLine) error
	PostJournalEntry(ctx context.Context, id, postedBy uuid.UUID, postedAt time.Time) error

	MarkInvoiceSubmitted(ctx context.Context, id, entryID uuid.UUID) (bool, error)
	CreateAllocations(ctx context.Context, allocs []PaymentAllocation) error
	SettleInvoice(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (InvoiceStatus, bool, error)
	MarkPaymentSubmitted(ctx context.Context, id, entryID uuid.UUID) (bool, error)

	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateInvoiceItemParams struct {
	ItemName         string
	Description      string
	Quantity         decimal.Decimal
	Rate             decimal.Decimal
	TaxAmount        decimal.Decimal
	IncomeAccountID  *uuid.UUID
	ExpenseAccountID *uuid.UUID
	CostCenterID     *uuid.UUID
}

type CreateInvoiceParams struct {
	OrganizationID uuid.UUID
	CreatedBy      uuid.UUID
	InvoiceType    InvoiceType
	PartyName      string
	InvoiceDate    time.Time
	DueDate        time.Time
	Remarks        string
	Items          []CreateInvoiceItemParams
}

// CreateInvoice persists a draft invoice with its items. Item amounts
// are quantity x rate rounded to cents; tax amounts arrive precomputed
// on each item. The outstanding amount starts at the grand total.
func (s *Service) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*Invoice, error) {
	if params.InvoiceType != InvoiceTypeSales && params.InvoiceType != InvoiceTypePurchase {
		return nil, Validationf("invalid invoice type %q", params.InvoiceType)
	}

	if params.PartyName == "" {
		return nil, Validationf("party name is required")
	}

	if len(params.Items) == 0 {
		return nil, Validationf("invoice must have at least one item")
	}

	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	items := make([]InvoiceItem, 0, len(params.Items))

	for i, ip := range params.Items {
		if !ip.Quantity.IsPositive() {
			return nil, Validationf("item %d: quantity must be greater than zero", i+1)
		}

		if ip.Rate.IsNegative() {
			return nil, Validationf("item %d: rate cannot be negative", i+1)
		}

		if params.InvoiceType == InvoiceTypeSales && ip.IncomeAccountID == nil {
			return nil, Validationf("item %d: income account is required on a sales invoice", i+1)
		}

		if params.InvoiceType == InvoiceTypePurchase && ip.ExpenseAccountID == nil {
			return nil, Validationf("item %d: expense account is required on a purchase invoice", i+1)
		}

		amount := roundCurrency(ip.Quantity.Mul(ip.Rate))
		tax := roundCurrency(ip.TaxAmount)
		subtotal = subtotal.Add(amount)
		taxTotal = taxTotal.Add(tax)

		items = append(items, InvoiceItem{
			ItemName:         ip.ItemName,
			Description:      ip.Description,
			Quantity:         ip.Quantity,
			Rate:             ip.Rate,
			Amount:           amount,
			TaxAmount:        tax,
			IncomeAccountID:  ip.IncomeAccountID,
			ExpenseAccountID: ip.ExpenseAccountID,
			CostCenterID:     ip.CostCenterID,
		})
	}

	grandTotal := subtotal.Add(taxTotal)

	inv := &Invoice{
		OrganizationID:    params.OrganizationID,
		InvoiceType:       params.InvoiceType,
		PartyName:         params.PartyName,
		InvoiceDate:       params.InvoiceDate,
		DueDate:           params.DueDate,
		Subtotal:          subtotal,
		TaxTotal:          taxTotal,
		GrandTotal:        grandTotal,
		OutstandingAmount: grandTotal,
		Status:            InvoiceStatusDraft,
		Remarks:           params.Remarks,
		CreatedBy:         params.CreatedBy,
		Items:             items,
	}

	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	return inv, nil
}

func (s *Service) GetInvoice(ctx context.Context, orgID, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, orgID, id)
}

func (s *Service) GetPayment(ctx context.Context, orgID, id uuid.UUID) (*Payment, error) {
	return s.repo.GetPayment(ctx, orgID, id)
}

func (s *Service) ListAccounts(ctx context.Context, orgID uuid.UUID) ([]*Account, error) {
	return s.repo.ListAccounts(ctx, orgID)
}
