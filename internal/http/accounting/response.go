package accounting

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fieldwise/agribooks/internal/accounting"
)

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(successEnvelope{Success: true, Data: data}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(errorEnvelope{Success: false, Error: msg}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// respondDomainError maps the domain error taxonomy onto status codes.
// Unclassified errors are internal and never leak their message.
func respondDomainError(w http.ResponseWriter, err error) {
	switch accounting.KindOf(err) {
	case accounting.KindValidation:
		respondError(w, http.StatusBadRequest, err.Error())
	case accounting.KindNotFound:
		respondError(w, http.StatusNotFound, err.Error())
	case accounting.KindUnauthorized:
		respondError(w, http.StatusUnauthorized, err.Error())
	case accounting.KindConsistency:
		slog.Error("consistency failure", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
	default:
		slog.Error("internal error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

type postInvoiceResponse struct {
	InvoiceID      uuid.UUID `json:"invoice_id"`
	JournalEntryID uuid.UUID `json:"journal_entry_id"`
}

type allocatePaymentResponse struct {
	PaymentID         uuid.UUID       `json:"payment_id"`
	JournalEntryID    uuid.UUID       `json:"journal_entry_id"`
	AllocatedAmount   decimal.Decimal `json:"allocated_amount"`
	UnallocatedAmount decimal.Decimal `json:"unallocated_amount"`
}

type invoiceItemResponse struct {
	ID               uuid.UUID       `json:"id"`
	ItemName         string          `json:"item_name"`
	Description      string          `json:"description,omitempty"`
	Quantity         decimal.Decimal `json:"quantity"`
	Rate             decimal.Decimal `json:"rate"`
	Amount           decimal.Decimal `json:"amount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	IncomeAccountID  *uuid.UUID      `json:"income_account_id,omitempty"`
	ExpenseAccountID *uuid.UUID      `json:"expense_account_id,omitempty"`
	CostCenterID     *uuid.UUID      `json:"cost_center_id,omitempty"`
}

type invoiceResponse struct {
	ID                uuid.UUID                `json:"id"`
	InvoiceNumber     string                   `json:"invoice_number"`
	InvoiceType       accounting.InvoiceType   `json:"invoice_type"`
	PartyName         string                   `json:"party_name"`
	InvoiceDate       string                   `json:"invoice_date"`
	DueDate           string                   `json:"due_date"`
	Subtotal          decimal.Decimal          `json:"subtotal"`
	TaxTotal          decimal.Decimal          `json:"tax_total"`
	GrandTotal        decimal.Decimal          `json:"grand_total"`
	OutstandingAmount decimal.Decimal          `json:"outstanding_amount"`
	Status            accounting.InvoiceStatus `json:"status"`
	JournalEntryID    *uuid.UUID               `json:"journal_entry_id,omitempty"`
	Remarks           string                   `json:"remarks,omitempty"`
	Items             []invoiceItemResponse    `json:"items"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         *time.Time               `json:"updated_at,omitempty"`
}

func toInvoiceResponse(inv *accounting.Invoice) invoiceResponse {
	resp := invoiceResponse{
		ID:                inv.ID,
		InvoiceNumber:     inv.InvoiceNumber,
		InvoiceType:       inv.InvoiceType,
		PartyName:         inv.PartyName,
		InvoiceDate:       inv.InvoiceDate.Format(time.DateOnly),
		DueDate:           inv.DueDate.Format(time.DateOnly),
		Subtotal:          inv.Subtotal,
		TaxTotal:          inv.TaxTotal,
		GrandTotal:        inv.GrandTotal,
		OutstandingAmount: inv.OutstandingAmount,
		Status:            inv.Status,
		JournalEntryID:    inv.JournalEntryID,
		Remarks:           inv.Remarks,
		Items:             make([]invoiceItemResponse, len(inv.Items)),
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
	}

	for i, item := range inv.Items {
		resp.Items[i] = invoiceItemResponse{
			ID:               item.ID,
			ItemName:         item.ItemName,
			Description:      item.Description,
			Quantity:         item.Quantity,
			Rate:             item.Rate,
			Amount:           item.Amount,
			TaxAmount:        item.TaxAmount,
			IncomeAccountID:  item.IncomeAccountID,
			ExpenseAccountID: item.ExpenseAccountID,
			CostCenterID:     item.CostCenterID,
		}
	}

	return resp
}

type accountResponse struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
}

func toAccountResponseList(accounts []*accounting.Account) []accountResponse {
	resp := make([]accountResponse, len(accounts))
	for i, acc := range accounts {
		resp[i] = accountResponse{
			ID:   acc.ID,
			Code: string(acc.Code),
			Name: acc.Name,
		}
	}

	return resp
}
