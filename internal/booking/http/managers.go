package http

import (
	"net/http"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/service"
	"github.com/castlinehq/castline/pkg/httpx"
)

// ManagersHandler serves /v1/managers.
type ManagersHandler struct {
	Managers *service.ManagerService
}

type managerRequest struct {
	AgencyID   string `json:"agencyId"`
	AgencyName string `json:"agencyName"`
	RegNumber  string `json:"regNumber"`
	Industry   string `json:"industry"`
	Address    string `json:"address"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

// HandleCreate godoc
//
//	@Summary	Create a manager profile for the authenticated user
//	@Tags		Managers
//	@Security	BearerAuth
//	@Success	201	{object}	domain.Manager
//	@Router		/v1/managers [post].
func (h *ManagersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req managerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	manager, err := h.Managers.Create(r.Context(), domain.Manager{
		UserID:     httpx.UserIDFromContext(r.Context()),
		AgencyID:   req.AgencyID,
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
	httpx.WriteJSON(w, http.StatusCreated, manager)
}

// HandleList godoc
//
//	@Summary	List managers
//	@Tags		Managers
//	@Security	BearerAuth
//	@Router		/v1/managers [get].
func (h *ManagersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	managers, err := h.Managers.List(r.Context(), pageFromQuery(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newListResponse(r, managers, 0))
}

// HandleGet godoc
//
//	@Summary	Get a manager
//	@Tags		Managers
//	@Security	BearerAuth
//	@Failure	404	{object}	errorResponse	"Not found"
//	@Router		/v1/managers/{id} [get].
func (h *ManagersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	manager, err := h.Managers.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, manager)
}

// HandleUpdate godoc
//
//	@Summary	Update a manager
//	@Tags		Managers
//	@Security	BearerAuth
//	@Router		/v1/managers/{id} [patch].
func (h *ManagersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	existing, err := h.Managers.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	req := managerRequest{
		AgencyID:   existing.AgencyID,
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

	existing.AgencyID = req.AgencyID
	existing.AgencyName = req.AgencyName
	existing.RegNumber = req.RegNumber
	existing.Industry = req.Industry
	existing.Address = req.Address
	existing.State = req.State
	existing.Country = req.Country

	updated, err := h.Managers.Update(r.Context(), existing)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete godoc
//
//	@Summary	Delete a manager
//	@Tags		Managers
//	@Security	BearerAuth
//	@Success	204
//	@Router		/v1/managers/{id} [delete].
func (h *ManagersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Managers.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
