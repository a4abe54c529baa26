package http

import (
	"net/http"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/service"
	"github.com/castlinehq/castline/pkg/httpx"
)

// AgenciesHandler serves /v1/agencies.
type AgenciesHandler struct {
	Agencies *service.AgencyService
}

type agencyRequest struct {
	AgencyName string `json:"agencyName"`
	RegNumber  string `json:"regNumber"`
	Industry   string `json:"industry"`
	Address    string `json:"address"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

// HandleCreate godoc
//
//	@Summary	Create an agency profile for the authenticated user
//	@Tags		Agencies
//	@Security	BearerAuth
//	@Success	201	{object}	domain.Agency
//	@Router		/v1/agencies [post].
func (h *AgenciesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req agencyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if req.AgencyName == "" {
		writeBadRequest(w, "Agency name is required")
		return
	}

	agency, err := h.Agencies.Create(r.Context(), domain.Agency{
		UserID:     httpx.UserIDFromContext(r.Context()),
		AgencyName: req.AgencyName,
		RegNumber:  req.RegNumber,
		Industry:   req.Industry,
		Address:    req.Address,
		State:      req.State,
		Country:    req.Country,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, agency)
}

// HandleList godoc
//
//	@Summary	List agencies
//	@Tags		Agencies
//	@Security	BearerAuth
//	@Router		/v1/agencies [get].
func (h *AgenciesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	agencies, err := h.Agencies.List(r.Context(), pageFromQuery(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newListResponse(r, agencies, 0))
}

// HandleGet godoc
//
//	@Summary	Get an agency
//	@Tags		Agencies
//	@Security	BearerAuth
//	@Failure	404	{object}	errorResponse	"Not found"
//	@Router		/v1/agencies/{id} [get].
func (h *AgenciesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	agency, err := h.Agencies.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, agency)
}

// HandleUpdate godoc
//
//	@Summary	Update an agency
//	@Tags		Agencies
//	@Security	BearerAuth
//	@Router		/v1/agencies/{id} [patch].
func (h *AgenciesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	existing, err := h.Agencies.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	req := agencyRequest{
		AgencyName: existing.AgencyName,
		RegNumber:  existing.RegNumber,
		Industry:   existing.Industry,
		Address:    existing.Address,
		State:      existing.State,
		Country:    existing.Country,
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	existing.AgencyName = req.AgencyName
	existing.RegNumber = req.RegNumber
	existing.Industry = req.Industry
	existing.Address = req.Address
	existing.State = req.State
	existing.Country = req.Country

	updated, err := h.Agencies.Update(r.Context(), existing)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete godoc
//
//	@Summary	Delete an agency
//	@Tags		Agencies
//	@Security	BearerAuth
//	@Success	204
//	@Router		/v1/agencies/{id} [delete].
func (h *AgenciesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Agencies.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
