package http

import (
	"net/http"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/service"
	"github.com/castlinehq/castline/pkg/httpx"
)

// AgencyManagersHandler serves /v1/agency-managers.
type AgencyManagersHandler struct {
	AgencyManagers *service.AgencyManagerService
}

type agencyManagerRequest struct {
	AgencyID  string `json:"agencyId"`
	ManagerID string `json:"managerId"`
}

// HandleCreate godoc
//
//	@Summary	Link a manager to an agency
//	@Tags		AgencyManagers
//	@Security	BearerAuth
//	@Success	201	{object}	domain.AgencyManager
//	@Router		/v1/agency-managers [post].
func (h *AgencyManagersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req agencyManagerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if req.AgencyID == "" || req.ManagerID == "" {
		writeBadRequest(w, "Agency id and manager id are required")
		return
	}

	link, err := h.AgencyManagers.Create(r.Context(), domain.AgencyManager{
		UserID:    httpx.UserIDFromContext(r.Context()),
		AgencyID:  req.AgencyID,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, link)
}

// HandleList godoc
//
//	@Summary	List agency-manager links
//	@Tags		AgencyManagers
//	@Security	BearerAuth
//	@Router		/v1/agency-managers [get].
func (h *AgencyManagersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	links, err := h.AgencyManagers.List(r.Context(), pageFromQuery(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newListResponse(r, links, 0))
}

// HandleGet godoc
//
//	@Summary	Get an agency-manager link
//	@Tags		AgencyManagers
//	@Security	BearerAuth
//	@Failure	404	{object}	errorResponse	"Not found"
//	@Router		/v1/agency-managers/{id} [get].
func (h *AgencyManagersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	link, err := h.AgencyManagers.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, link)
}

// HandleUpdate godoc
//
//	@Summary	Update an agency-manager link
//	@Tags		AgencyManagers
//	@Security	BearerAuth
//	@Router		/v1/agency-managers/{id} [patch].
func (h *AgencyManagersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	existing, err := h.AgencyManagers.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	req := agencyManagerRequest{AgencyID: existing.AgencyID, ManagerID: existing.ManagerID}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	existing.AgencyID = req.AgencyID
	existing.ManagerID = req.ManagerID

	updated, err := h.AgencyManagers.Update(r.Context(), existing)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete godoc
//
//	@Summary	Delete an agency-manager link
//	@Tags		AgencyManagers
//	@Security	BearerAuth
//	@Success	204
//	@Router		/v1/agency-managers/{id} [delete].
func (h *AgencyManagersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.AgencyManagers.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
