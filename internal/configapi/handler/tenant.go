package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/edvin/panelgate/internal/configapi/core"
	"github.com/edvin/panelgate/internal/configapi/request"
	"github.com/edvin/panelgate/internal/configapi/response"
	"github.com/edvin/panelgate/internal/model"
	"github.com/edvin/panelgate/internal/platform"
)

type Tenant struct {
	svc *core.TenantService
}

func NewTenant(svc *core.TenantService) *Tenant {
	return &Tenant{svc: svc}
}

func (h *Tenant) List(w http.ResponseWriter, r *http.Request) {
	params := request.ParseListParams(r, "created_at")

	tenants, hasMore, err := h.svc.List(r.Context(), params)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var nextCursor string
	if hasMore && len(tenants) > 0 {
		nextCursor = tenants[len(tenants)-1].ID
	}
	response.WritePaginated(w, http.StatusOK, tenants, nextCursor, hasMore)
}

func (h *Tenant) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTenant
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	tenant := &model.Tenant{
		ID:             platform.NewID(),
		Subdomain:      req.Subdomain,
		CustomDomain:   req.CustomDomain,
		BrandName:      req.BrandName,
		Logo:           req.Logo,
		Favicon:        req.Favicon,
		Font:           req.Font,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		AccentColor:    req.AccentColor,
		Status:         model.StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	applyDefaults(tenant)

	if err := h.svc.Create(r.Context(), tenant); err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusCreated, tenant)
}

func (h *Tenant) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	tenant, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.lookupError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, tenant)
}

func (h *Tenant) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.UpdateTenant
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	tenant, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.lookupError(w, err)
		return
	}

	if req.Subdomain != nil {
		tenant.Subdomain = *req.Subdomain
	}
	if req.CustomDomain != nil {
		tenant.CustomDomain = req.CustomDomain
	}
	if req.BrandName != nil {
		tenant.BrandName = *req.BrandName
	}
	if req.Logo != nil {
		tenant.Logo = req.Logo
	}
	if req.Favicon != nil {
		tenant.Favicon = req.Favicon
	}
	if req.Font != nil {
		tenant.Font = *req.Font
	}
	if req.PrimaryColor != nil {
		tenant.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		tenant.SecondaryColor = *req.SecondaryColor
	}
	if req.AccentColor != nil {
		tenant.AccentColor = *req.AccentColor
	}
	if req.Status != nil {
		tenant.Status = *req.Status
	}

	if err := h.svc.Update(r.Context(), tenant); err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, tenant)
}

func (h *Tenant) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Tenant) lookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, core.ErrNotFound) {
		response.WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	response.WriteError(w, http.StatusInternalServerError, err.Error())
}

func applyDefaults(t *model.Tenant) {
	if t.Font == "" {
		t.Font = "Inter"
	}
	if t.PrimaryColor == "" {
		t.PrimaryColor = model.DefaultPrimaryColor
	}
	if t.SecondaryColor == "" {
		t.SecondaryColor = model.DefaultSecondaryColor
	}
	if t.AccentColor == "" {
		t.AccentColor = model.DefaultAccentColor
	}
}
