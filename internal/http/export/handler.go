package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fieldwise/agribooks/internal/export"
	"github.com/fieldwise/agribooks/internal/http/auth"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.metadata)
	r.Post("/download", h.download)
}

type exportRequest struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

func (req exportRequest) filter() (export.ListFilter, error) {
	var filter export.ListFilter

	if req.StartDate != "" {
		start, err := time.Parse(time.DateOnly, req.StartDate)
		if err != nil {
			return filter, fmt.Errorf("invalid start_date")
		}

		filter.StartDate = &start
	}

	if req.EndDate != "" {
		end, err := time.Parse(time.DateOnly, req.EndDate)
		if err != nil {
			return filter, fmt.Errorf("invalid end_date")
		}

		filter.EndDate = &end
	}

	return filter, nil
}

type lineResponse struct {
	JournalEntryID  uuid.UUID       `json:"journal_entry_id"`
	PostingDate     string          `json:"posting_date"`
	ReferenceType   string          `json:"reference_type"`
	ReferenceNumber string          `json:"reference_number"`
	AccountCode     string          `json:"account_code"`
	AccountName     string          `json:"account_name"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	Description     string          `json:"description,omitempty"`
}

type exportMetadataResponse struct {
	Lines   []lineResponse `json:"lines"`
	Summary string         `json:"summary"`
}

func toLineResponse(l *export.Line) lineResponse {
	return lineResponse{
		JournalEntryID:  l.JournalEntryID,
		PostingDate:     l.PostingDate.Format(time.DateOnly),
		ReferenceType:   l.ReferenceType,
		ReferenceNumber: l.ReferenceNumber,
		AccountCode:     l.AccountCode,
		AccountName:     l.AccountName,
		Debit:           l.Debit,
		Credit:          l.Credit,
		Description:     l.Description,
	}
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) ([]*export.Line, bool) {
	orgID, ok := auth.OrganizationID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	filter, err := req.filter()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	lines, err := h.svc.Export(r.Context(), orgID, filter)
	if err != nil {
		slog.Error("journal export failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")

		return nil, false
	}

	return lines, true
}

func (h *Handler) metadata(w http.ResponseWriter, r *http.Request) {
	lines, ok := h.export(w, r)
	if !ok {
		return
	}

	responses := make([]lineResponse, 0, len(lines))
	for _, l := range lines {
		responses = append(responses, toLineResponse(l))
	}

	respond(w, http.StatusOK, exportMetadataResponse{
		Lines:   responses,
		Summary: h.svc.GenerateSummary(lines),
	})
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	lines, ok := h.export(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"journal_export_%s.csv\"", time.Now().Format("20060102")))

	if err := h.svc.WriteCSV(w, lines); err != nil {
		slog.Error("failed to write csv", "error", err)
	}
}

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
	_ = json.NewEncoder(w).Encode(errorEnvelope{Success: false, Error: msg})
}
