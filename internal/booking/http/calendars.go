package http

import (
	"net/http"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/service"
	"github.com/castlinehq/castline/pkg/httpx"
)

// CalendarsHandler serves /v1/calendars.
type CalendarsHandler struct {
	Calendars *service.CalendarService
}

type calendarRequest struct {
	EventTitle   string `json:"eventTitle"`
	Description  string `json:"description"`
	EventVenue   string `json:"eventVenue"`
	EventCity    string `json:"eventCity"`
	EventCountry string `json:"eventCountry"`
	EventDate    string `json:"eventDate"`
	EventTime    string `json:"eventTime"`
}

// HandleCreate godoc
//
//	@Summary	Create the authenticated user's calendar
//	@Tags		Calendars
//	@Security	BearerAuth
//	@Success	201	{object}	domain.Calendar
//	@Failure	400	{object}	errorResponse	"Calendar already exists"
//	@Router		/v1/calendars [post].
func (h *CalendarsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req calendarRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if req.EventTitle == "" {
		writeBadRequest(w, "Event title is required")
		return
	}

	calendar, err := h.Calendars.Create(r.Context(), domain.Calendar{
		UserID:       httpx.UserIDFromContext(r.Context()),
		EventTitle:   req.EventTitle,
		Description:  req.Description,
		EventVenue:   req.EventVenue,
		EventCity:    req.EventCity,
		EventCountry: req.EventCountry,
		EventDate:    req.EventDate,
		EventTime:    req.EventTime,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, calendar)
}

// HandleList godoc
//
//	@Summary	List calendars
//	@Tags		Calendars
//	@Security	BearerAuth
//	@Router		/v1/calendars [get].
func (h *CalendarsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	calendars, err := h.Calendars.List(r.Context(), pageFromQuery(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newListResponse(r, calendars, 0))
}

// HandleGet godoc
//
//	@Summary	Get a calendar
//	@Tags		Calendars
//	@Security	BearerAuth
//	@Failure	404	{object}	errorResponse	"Not found"
//	@Router		/v1/calendars/{id} [get].
func (h *CalendarsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	calendar, err := h.Calendars.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, calendar)
}

// HandleGetMine godoc
//
//	@Summary	Get the authenticated user's calendar
//	@Tags		Calendars
//	@Security	BearerAuth
//	@Failure	404	{object}	errorResponse	"Not found"
//	@Router		/v1/calendars/me [get].
func (h *CalendarsHandler) HandleGetMine(w http.ResponseWriter, r *http.Request) {
	calendar, err := h.Calendars.GetByUser(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, calendar)
}

// HandleUpdate godoc
//
//	@Summary	Update a calendar
//	@Tags		Calendars
//	@Security	BearerAuth
//	@Router		/v1/calendars/{id} [patch].
func (h *CalendarsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	existing, err := h.Calendars.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	req := calendarRequest{
		EventTitle:   existing.EventTitle,
		Description:  existing.Description,
		EventVenue:   existing.EventVenue,
		EventCity:    existing.EventCity,
		EventCountry: existing.EventCountry,
		EventDate:    existing.EventDate,
		EventTime:    existing.EventTime,
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	existing.EventTitle = req.EventTitle
	existing.Description = req.Description
	existing.EventVenue = req.EventVenue
	existing.EventCity = req.EventCity
	existing.EventCountry = req.EventCountry
	existing.EventDate = req.EventDate
	existing.EventTime = req.EventTime

	updated, err := h.Calendars.Update(r.Context(), existing)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete godoc
//
//	@Summary	Delete a calendar
//	@Tags		Calendars
//	@Security	BearerAuth
//	@Success	204
//	@Router		/v1/calendars/{id} [delete].
func (h *CalendarsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Calendars.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
