package http

import (
	"net/http"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/service"
	"github.com/castlinehq/castline/pkg/httpx"
)

// InvoicesHandler serves /v1/invoices.
type InvoicesHandler struct {
	Invoices *service.InvoiceService
}

type invoiceRequest struct {
	TalentID     string `json:"talentId"`
	AgencyID     string `json:"agencyId"`
	ManagerID    string `json:"managerId"`
	ClientName   string `json:"clientName"`
	ClientEmail  string `json:"clientEmail"`
	EventType    string `json:"eventType"`
	EventDate    string `json:"eventDate"`
	BillOption   string `json:"billOption"`
	Fee          int64  `json:"fee"`
	LogisticInfo string `json:"logisticInfo"`
	LogisticFee  int64  `json:"logisticFee"`
	Terms        string `json:"terms"`
	TotalFee     int64  `json:"totalFee"`
}

// HandleCreate godoc
//
//	@Summary	Raise an invoice against a talent booking
//	@Tags		Invoices
//	@Security	BearerAuth
//	@Success	201	{object}	domain.Invoice
//	@Failure	404	{object}	errorResponse	"Not found"
//	@Router		/v1/invoices [post].
func (h *InvoicesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if req.TalentID == "" || req.ClientName == "" {
		writeBadRequest(w, "Talent id and client name are required")
		return
	}

	invoice, err := h.Invoices.Create(r.Context(), domain.Invoice{
		TalentID:     req.TalentID,
		AgencyID:     req.AgencyID,
		ManagerID:    req.ManagerID,
		ClientName:   req.ClientName,
		ClientEmail:  req.ClientEmail,
		EventType:    req.EventType,
		EventDate:    req.EventDate,
		BillOption:   req.BillOption,
		Fee:          req.Fee,
		LogisticInfo: req.LogisticInfo,
		LogisticFee:  req.LogisticFee,
		Terms:        req.Terms,
		TotalFee:     req.TotalFee,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, invoice)
}

// HandleList godoc
//
//	@Summary	List invoices, optionally filtered by talent
//	@Tags		Invoices
//	@Security	BearerAuth
//	@Param		talentId	query	string	false	"Filter by talent"
//	@Router		/v1/invoices [get].
func (h *InvoicesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var (
		invoices []domain.Invoice
		err      error
	)
	if talentID := r.URL.Query().Get("talentId"); talentID != "" {
		invoices, err = h.Invoices.ListByTalent(r.Context(), talentID, pageFromQuery(r))
	} else {
		invoices, err = h.Invoices.List(r.Context(), pageFromQuery(r))
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newListResponse(r, invoices, 0))
}

// HandleGet godoc
//
//	@Summary	Get an invoice
//	@Tags		Invoices
//	@Security	BearerAuth
//	@Failure	404	{object}	errorResponse	"Not found"
//	@Router		/v1/invoices/{id} [get].
func (h *InvoicesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.Invoices.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, invoice)
}

// HandleUpdate godoc
//
//	@Summary	Update an invoice
//	@Tags		Invoices
//	@Security	BearerAuth
//	@Router		/v1/invoices/{id} [patch].
func (h *InvoicesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	existing, err := h.Invoices.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	req := invoiceRequest{
		TalentID:     existing.TalentID,
		AgencyID:     existing.AgencyID,
		ManagerID:    existing.ManagerID,
		ClientName:   existing.ClientName,
		ClientEmail:  existing.ClientEmail,
		EventType:    existing.EventType,
		EventDate:    existing.EventDate,
		BillOption:   existing.BillOption,
		Fee:          existing.Fee,
		LogisticInfo: existing.LogisticInfo,
		LogisticFee:  existing.LogisticFee,
		Terms:        existing.Terms,
		TotalFee:     existing.TotalFee,
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	existing.AgencyID = req.AgencyID
	existing.ManagerID = req.ManagerID
	existing.ClientName = req.ClientName
	existing.ClientEmail = req.ClientEmail
	existing.EventType = req.EventType
	existing.EventDate = req.EventDate
	existing.BillOption = req.BillOption
	existing.Fee = req.Fee
	existing.LogisticInfo = req.LogisticInfo
	existing.LogisticFee = req.LogisticFee
	existing.Terms = req.Terms
	existing.TotalFee = req.TotalFee

	updated, err := h.Invoices.Update(r.Context(), existing)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete godoc
//
//	@Summary	Delete an invoice
//	@Tags		Invoices
//	@Security	BearerAuth
//	@Success	204
//	@Router		/v1/invoices/{id} [delete].
func (h *InvoicesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Invoices.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
