package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/absensi-app/absensi-backend-go/internal/domain/role"
	"github.com/absensi-app/absensi-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RoleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type roleHandlerImpl struct {
	roleService role.RoleService
}

func NewRoleHandler(roleService role.RoleService) RoleHandler {
	return &roleHandlerImpl{
		roleService: roleService,
	}
}

// List implements RoleHandler.
func (h *roleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.roleService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements RoleHandler.
func (h *roleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req role.RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create role request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.roleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Role created successfully", result)
}

// Get implements RoleHandler.
func (h *roleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.roleService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements RoleHandler.
func (h *roleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req role.RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update role request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.roleService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role updated successfully", result)
}

// Delete implements RoleHandler.
func (h *roleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.roleService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role deleted successfully", nil)
}
