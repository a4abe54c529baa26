package http

import (
	"net/http"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/service"
	"github.com/castlinehq/castline/pkg/httpx"
)

// InquiriesHandler serves /v1/inquiries.
type InquiriesHandler struct {
	Inquiries *service.InquiryService
}

type inquiryRequest struct {
	TalentID  string `json:"talentId"`
	EventType string `json:"eventType"`
	EventDate string `json:"eventDate"`
	Venue     string `json:"venue"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Budget    string `json:"budget"`
	Message   string `json:"message"`
}

// HandleCreate godoc
//
//	@Summary	Open a booking inquiry for a talent
//	@Tags		Inquiries
//	@Security	BearerAuth
//	@Success	201	{object}	domain.Inquiry
//	@Failure	404	{object}	errorResponse	"Not found"
//	@Router		/v1/inquiries [post].
func (h *InquiriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req inquiryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if req.TalentID == "" {
		writeBadRequest(w, "Talent id is required")
		return
	}

	inquiry, err := h.Inquiries.Create(r.Context(), domain.Inquiry{
		UserID:    httpx.UserIDFromContext(r.Context()),
		TalentID:  req.TalentID,
		EventType: req.EventType,
		EventDate: req.EventDate,
		Venue:     req.Venue,
		City:      req.City,
		Country:   req.Country,
		Budget:    req.Budget,
		Message:   req.Message,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, inquiry)
}

// HandleList godoc
//
//	@Summary	List inquiries, optionally filtered by talent
//	@Tags		Inquiries
//	@Security	BearerAuth
//	@Param		talentId	query	string	false	"Filter by talent"
//	@Router		/v1/inquiries [get].
func (h *InquiriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var (
		inquiries []domain.Inquiry
		err       error
	)
	if talentID := r.URL.Query().Get("talentId"); talentID != "" {
		inquiries, err = h.Inquiries.ListByTalent(r.Context(), talentID, pageFromQuery(r))
	} else {
		inquiries, err = h.Inquiries.List(r.Context(), pageFromQuery(r))
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newListResponse(r, inquiries, 0))
}

// HandleGet godoc
//
//	@Summary	Get an inquiry
//	@Tags		Inquiries
//	@Security	BearerAuth
//	@Failure	404	{object}	errorResponse	"Not found"
//	@Router		/v1/inquiries/{id} [get].
func (h *InquiriesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	inquiry, err := h.Inquiries.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, inquiry)
}

type updateInquiryRequest struct {
	inquiryRequest
	Status domain.InquiryStatus `json:"status"`
}

// HandleUpdate godoc
//
//	@Summary	Update an inquiry
//	@Tags		Inquiries
//	@Security	BearerAuth
//	@Router		/v1/inquiries/{id} [patch].
func (h *InquiriesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	existing, err := h.Inquiries.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	req := updateInquiryRequest{
		inquiryRequest: inquiryRequest{
			TalentID:  existing.TalentID,
			EventType: existing.EventType,
			EventDate: existing.EventDate,
			Venue:     existing.Venue,
			City:      existing.City,
			Country:   existing.Country,
			Budget:    existing.Budget,
			Message:   existing.Message,
		},
		Status: existing.Status,
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	existing.EventType = req.EventType
	existing.EventDate = req.EventDate
	existing.Venue = req.Venue
	existing.City = req.City
	existing.Country = req.Country
	existing.Budget = req.Budget
	existing.Message = req.Message
	existing.Status = req.Status

	updated, err := h.Inquiries.Update(r.Context(), existing)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete godoc
//
//	@Summary	Delete an inquiry
//	@Tags		Inquiries
//	@Security	BearerAuth
//	@Success	204
//	@Router		/v1/inquiries/{id} [delete].
func (h *InquiriesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Inquiries.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
