package http

import (
	"net/http"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/service"
	"github.com/castlinehq/castline/pkg/httpx"
)

// TalentsHandler serves /v1/talents.
type TalentsHandler struct {
	Talents *service.TalentService
}

type talentRequest struct {
	StageName string `json:"stageName"`
	Category  string `json:"category"`
	Bio       string `json:"bio"`
	FeeRange  string `json:"feeRange"`
}

// HandleCreate godoc
//
//	@Summary	Create a talent profile for the authenticated user
//	@Tags		Talents
//	@Security	BearerAuth
//	@Success	201	{object}	domain.Talent
//	@Router		/v1/talents [post].
func (h *TalentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req talentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if req.StageName == "" {
		writeBadRequest(w, "Stage name is required")
		return
	}

	talent, err := h.Talents.Create(r.Context(), domain.Talent{
		UserID:    httpx.UserIDFromContext(r.Context()),
		StageName: req.StageName,
		Category:  req.Category,
		Bio:       req.Bio,
		FeeRange:  req.FeeRange,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, talent)
}

// HandleList godoc
//
//	@Summary	List talents
//	@Tags		Talents
//	@Security	BearerAuth
//	@Router		/v1/talents [get].
func (h *TalentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	talents, err := h.Talents.List(r.Context(), pageFromQuery(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newListResponse(r, talents, 0))
}

// HandleGet godoc
//
//	@Summary	Get a talent
//	@Tags		Talents
//	@Security	BearerAuth
//	@Failure	404	{object}	errorResponse	"Not found"
//	@Router		/v1/talents/{id} [get].
func (h *TalentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	talent, err := h.Talents.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, talent)
}

// HandleUpdate godoc
//
//	@Summary	Update a talent
//	@Tags		Talents
//	@Security	BearerAuth
//	@Router		/v1/talents/{id} [patch].
func (h *TalentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	existing, err := h.Talents.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	req := talentRequest{
		StageName: existing.StageName,
		Category:  existing.Category,
		Bio:       existing.Bio,
		FeeRange:  existing.FeeRange,
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	existing.StageName = req.StageName
	existing.Category = req.Category
	existing.Bio = req.Bio
	existing.FeeRange = req.FeeRange

	updated, err := h.Talents.Update(r.Context(), existing)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete godoc
//
//	@Summary	Delete a talent
//	@Tags		Talents
//	@Security	BearerAuth
//	@Success	204
//	@Router		/v1/talents/{id} [delete].
func (h *TalentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Talents.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
