package accounting

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fieldwise/agribooks/internal/accounting"
	"github.com/fieldwise/agribooks/internal/http/auth"
)

type Handler struct {
	svc *accounting.Service
}

func NewHandler(svc *accounting.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/invoices", h.createInvoice)
	r.Get("/invoices/{id}", h.getInvoice)
	r.Post("/invoices/post", h.postInvoice)
	r.Post("/payments/allocate", h.allocatePayment)
	r.Get("/accounts", h.listAccounts)
}

// scope pulls the authenticated user and tenant out of the request
// context; both middlewares run before any of these handlers.
func scope(r *http.Request) (userID, orgID uuid.UUID, ok bool) {
	userID, ok = auth.UserID(r.Context())
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	orgID, ok = auth.OrganizationID(r.Context())
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	return userID, orgID, true
}

type createInvoiceItemRequest struct {
	ItemName         string          `json:"item_name"`
	Description      string          `json:"description,omitempty"`
	Quantity         decimal.Decimal `json:"quantity"`
	Rate             decimal.Decimal `json:"rate"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	IncomeAccountID  *uuid.UUID      `json:"income_account_id,omitempty"`
	ExpenseAccountID *uuid.UUID      `json:"expense_account_id,omitempty"`
	CostCenterID     *uuid.UUID      `json:"cost_center_id,omitempty"`
}

type createInvoiceRequest struct {
	InvoiceType accounting.InvoiceType     `json:"invoice_type"`
	PartyName   string                     `json:"party_name"`
	InvoiceDate string                     `json:"invoice_date"`
	DueDate     string                     `json:"due_date"`
	Remarks     string                     `json:"remarks,omitempty"`
	Items       []createInvoiceItemRequest `json:"items"`
}

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	userID, orgID, ok := scope(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	invoiceDate, err := time.Parse(time.DateOnly, req.InvoiceDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid invoice_date")
		return
	}

	dueDate, err := time.Parse(time.DateOnly, req.DueDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid due_date")
		return
	}

	items := make([]accounting.CreateInvoiceItemParams, len(req.Items))
	for i, item := range req.Items {
		items[i] = accounting.CreateInvoiceItemParams{
			ItemName:         item.ItemName,
			Description:      item.Description,
			Quantity:         item.Quantity,
			Rate:             item.Rate,
			TaxAmount:        item.TaxAmount,
			IncomeAccountID:  item.IncomeAccountID,
			ExpenseAccountID: item.ExpenseAccountID,
			CostCenterID:     item.CostCenterID,
		}
	}

	inv, err := h.svc.CreateInvoice(r.Context(), accounting.CreateInvoiceParams{
		OrganizationID: orgID,
		CreatedBy:      userID,
		InvoiceType:    req.InvoiceType,
		PartyName:      req.PartyName,
		InvoiceDate:    invoiceDate,
		DueDate:        dueDate,
		Remarks:        req.Remarks,
		Items:          items,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusCreated, toInvoiceResponse(inv))
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	_, orgID, ok := scope(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	inv, err := h.svc.GetInvoice(r.Context(), orgID, id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, toInvoiceResponse(inv))
}

type postInvoiceRequest struct {
	InvoiceID   uuid.UUID `json:"invoice_id"`
	PostingDate string    `json:"posting_date"`
}

func (h *Handler) postInvoice(w http.ResponseWriter, r *http.Request) {
	userID, orgID, ok := scope(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req postInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	postingDate, err := time.Parse(time.DateOnly, req.PostingDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid posting_date")
		return
	}

	result, err := h.svc.PostInvoice(r.Context(), accounting.PostInvoiceParams{
		OrganizationID: orgID,
		InvoiceID:      req.InvoiceID,
		PostingDate:    postingDate,
		PostedBy:       userID,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, postInvoiceResponse{
		InvoiceID:      result.InvoiceID,
		JournalEntryID: result.JournalEntryID,
	})
}

type allocationRequest struct {
	InvoiceID       uuid.UUID       `json:"invoice_id"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
}

type allocatePaymentRequest struct {
	PaymentID   uuid.UUID           `json:"payment_id"`
	Allocations []allocationRequest `json:"allocations"`
}

func (h *Handler) allocatePayment(w http.ResponseWriter, r *http.Request) {
	userID, orgID, ok := scope(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req allocatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	allocations := make([]accounting.AllocationRequest, len(req.Allocations))
	for i, a := range req.Allocations {
		allocations[i] = accounting.AllocationRequest{
			InvoiceID:       a.InvoiceID,
			AllocatedAmount: a.AllocatedAmount,
		}
	}

	result, err := h.svc.AllocatePayment(r.Context(), accounting.AllocatePaymentParams{
		OrganizationID: orgID,
		PaymentID:      req.PaymentID,
		AllocatedBy:    userID,
		Allocations:    allocations,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, allocatePaymentResponse{
		PaymentID:         result.PaymentID,
		JournalEntryID:    result.JournalEntryID,
		AllocatedAmount:   result.AllocatedAmount,
		UnallocatedAmount: result.UnallocatedAmount,
	})
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	_, orgID, ok := scope(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	accounts, err := h.svc.ListAccounts(r.Context(), orgID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, toAccountResponseList(accounts))
}
