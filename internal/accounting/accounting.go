package accounting

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceType distinguishes customer billing from supplier billing.
type InvoiceType string

const (
	InvoiceTypeSales    InvoiceType = "sales"
	InvoiceTypePurchase InvoiceType = "purchase"
)

// InvoiceStatus is the lifecycle state of an invoice. Transitions only
// move forward: draft -> submitted -> (partially_paid <-> paid), with
// cancelled as a terminal side exit.
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusSubmitted     InvoiceStatus = "submitted"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

// PaymentType is the direction of money movement: "receive" settles
// sales invoices, "paid" settles purchase invoices.
type PaymentType string

const (
	PaymentTypeReceive PaymentType = "receive"
	PaymentTypePaid    PaymentType = "paid"
)

type PaymentStatus string

const (
	PaymentStatusDraft     PaymentStatus = "draft"
	PaymentStatusSubmitted PaymentStatus = "submitted"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

type JournalStatus string

const (
	JournalStatusDraft  JournalStatus = "draft"
	JournalStatusPosted JournalStatus = "posted"
)

// Invoice is a sales or purchase document. Once it leaves draft it is
// only mutated by the posting and allocation workflows.
type Invoice struct {
	ID                uuid.UUID
	OrganizationID    uuid.UUID
	InvoiceNumber     string
	InvoiceType       InvoiceType
	PartyName         string
	InvoiceDate       time.Time
	DueDate           time.Time
	Subtotal          decimal.Decimal
	TaxTotal          decimal.Decimal
	GrandTotal        decimal.Decimal
	OutstandingAmount decimal.Decimal
	Status            InvoiceStatus
	JournalEntryID    *uuid.UUID
	Remarks           string
	CreatedBy         uuid.UUID
	Items             []InvoiceItem
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// InvoiceItem is a single invoice line. IncomeAccountID is required on
// sales invoices, ExpenseAccountID on purchase invoices.
type InvoiceItem struct {
	ID               uuid.UUID
	InvoiceID        uuid.UUID
	ItemName         string
	Description      string
	Quantity         decimal.Decimal
	Rate             decimal.Decimal
	Amount           decimal.Decimal
	TaxAmount        decimal.Decimal
	IncomeAccountID  *uuid.UUID
	ExpenseAccountID *uuid.UUID
	CostCenterID     *uuid.UUID
}

// Payment is money received from or paid to a party, settled against
// invoices through allocations.
type Payment struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	PaymentNumber  string
	PaymentType    PaymentType
	PaymentMethod  string
	PaymentDate    time.Time
	PartyName      string
	Amount         decimal.Decimal
	Status         PaymentStatus
	BankAccountID  *uuid.UUID
	JournalEntryID *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// PaymentAllocation assigns part of a payment to one invoice.
type PaymentAllocation struct {
	ID              uuid.UUID
	PaymentID       uuid.UUID
	InvoiceID       uuid.UUID
	AllocatedAmount decimal.Decimal
	CreatedAt       time.Time
}

// JournalEntry is the header of one balanced set of debit/credit lines.
type JournalEntry struct {
	ID              uuid.UUID
	OrganizationID  uuid.UUID
	EntryDate       time.Time
	PostingDate     time.Time
	ReferenceType   string
	ReferenceNumber string
	Remarks         string
	Status          JournalStatus
	CreatedBy       uuid.UUID
	PostedBy        *uuid.UUID
	PostedAt        *time.Time
	CreatedAt       time.Time
}

// JournalLine is one side of a double entry. Exactly one of Debit or
// Credit is non-zero, and neither is negative.
type JournalLine struct {
	ID             uuid.UUID
	JournalEntryID uuid.UUID
	AccountID      uuid.UUID
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	CostCenterID   *uuid.UUID
	Description    string
}

// Account is a chart-of-accounts record, identified within an
// organization by its stable numeric code.
type Account struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Code           AccountCode
	Name           string
	CreatedAt      time.Time
}

// BankAccount is an organization bank account. Payments drawing on it
// post their cash line to LedgerAccountID instead of the default cash
// account; a bank account without a linked ledger account cannot be
// used in postings.
type BankAccount struct {
	ID              uuid.UUID
	OrganizationID  uuid.UUID
	Name            string
	LedgerAccountID *uuid.UUID
}

// expectedInvoiceType maps a payment direction to the invoice type it
// is allowed to settle.
func expectedInvoiceType(pt PaymentType) InvoiceType {
	if pt == PaymentTypeReceive {
		return InvoiceTypeSales
	}

	return InvoiceTypePurchase
}
