package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hsm-gustavo/smart-pantry/internal/api/auth"
	"github.com/hsm-gustavo/smart-pantry/internal/api/respond"
	"github.com/hsm-gustavo/smart-pantry/internal/common"
	"github.com/hsm-gustavo/smart-pantry/internal/db"
)

type CreateItemRequest struct {
	Name      string     `json:"name" example:"Milk"`
	Quantity  int        `json:"quantity" example:"2"`
	Unit      string     `json:"unit,omitempty" example:"L"`
	Expiry    string     `json:"expiry" example:"2026-10-20"`
	Category  string     `json:"category" example:"dairy"`
	Barcode   string     `json:"barcode,omitempty" example:"7891000055120"`
	Notes     string     `json:"notes,omitempty" example:"Lactose free"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type UpdateItemRequest struct {
	Name     *string `json:"name,omitempty" example:"Whole milk"`
	Quantity *int    `json:"quantity,omitempty" example:"1"`
	Expiry   *string `json:"expiry,omitempty" example:"2026-10-22"`
}

type ListResponse struct {
	Items []db.Item `json:"items"`
}

type ArchiveResponse struct {
	Bucket string `json:"bucket" example:"pantry-exports"`
	Key    string `json:"key" example:"exports/joao-at-example-com/20261016T120000Z.csv"`
}

type InventoryHandler struct {
	service *InventoryService
}

func NewInventoryHandler(s *InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthorized", "Invalid or missing authentication token")
	}
	return id, ok
}

// List godoc
// @Summary		List inventory items
// @Description	Return the caller's items ordered by ascending expiry
// @Tags			inventory
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	ListResponse
// @Failure		401	{object}	respond.ErrorResponse	"Invalid or missing token"
// @Failure		500	{object}	respond.ErrorResponse	"Internal server error"
// @Router			/api/inventory [get]
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	items, err := h.service.List(r.Context(), id.UserID)
	if err != nil {
		h.service.logger.Error(r.Context(), "list failed", "error", err)
		respond.FromError(w, err, "Error listing items")
		return
	}

	respond.JSON(w, http.StatusOK, ListResponse{Items: items})
}

// Create godoc
// @Summary		Create an inventory item
// @Tags			inventory
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			item	body		CreateItemRequest		true	"Item data"
// @Success		201		{object}	db.Item
// @Failure		400		{object}	respond.ErrorResponse	"Missing name"
// @Failure		401		{object}	respond.ErrorResponse	"Invalid or missing token"
// @Failure		500		{object}	respond.ErrorResponse	"Internal server error"
// @Router			/api/inventory [post]
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	it, err := h.service.Create(r.Context(), id.UserID, CreateInput{
		Name:      req.Name,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Expiry:    req.Expiry,
		Category:  req.Category,
		Barcode:   req.Barcode,
		Notes:     req.Notes,
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			respond.FromError(w, err, "Missing name")
			return
		}
		h.service.logger.Error(r.Context(), "create failed", "error", err)
		respond.FromError(w, err, "Error creating item")
		return
	}

	respond.JSON(w, http.StatusCreated, it)
}

// Update godoc
// @Summary		Update an inventory item
// @Description	Apply a partial update; only name, quantity and expiry can change
// @Tags			inventory
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id		path		string					true	"Item ID"
// @Param			item	body		UpdateItemRequest		true	"Fields to change"
// @Success		200		{object}	db.Item
// @Failure		400		{object}	respond.ErrorResponse	"Invalid body"
// @Failure		401		{object}	respond.ErrorResponse	"Invalid or missing token"
// @Failure		404		{object}	respond.ErrorResponse	"Item not found"
// @Router			/api/inventory/{id} [put]
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	it, err := h.service.Update(r.Context(), id.UserID, chi.URLParam(r, "id"), UpdateInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Expiry:   req.Expiry,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			respond.FromError(w, err, "Item not found")
		case errors.Is(err, common.ErrValidation):
			respond.FromError(w, err, "Name cannot be blank")
		default:
			h.service.logger.Error(r.Context(), "update failed", "error", err)
			respond.FromError(w, err, "Error updating item")
		}
		return
	}

	respond.JSON(w, http.StatusOK, it)
}

// Delete godoc
// @Summary		Delete an inventory item
// @Description	Remove the item if it exists; deleting a missing item still succeeds
// @Tags			inventory
// @Security		BearerAuth
// @Param			id	path	string	true	"Item ID"
// @Success		204
// @Failure		401	{object}	respond.ErrorResponse	"Invalid or missing token"
// @Router			/api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id.UserID, chi.URLParam(r, "id")); err != nil {
		h.service.logger.Error(r.Context(), "delete failed", "error", err)
		respond.FromError(w, err, "Error deleting item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stats godoc
// @Summary		Inventory statistics
// @Description	Count total, expired and expiring-soon items plus a per-category breakdown
// @Tags			inventory
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	Stats
// @Failure		401	{object}	respond.ErrorResponse	"Invalid or missing token"
// @Failure		500	{object}	respond.ErrorResponse	"Stored expiry could not be parsed"
// @Router			/api/inventory/stats [get]
func (h *InventoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	st, err := h.service.Stats(r.Context(), id.UserID)
	if err != nil {
		h.service.logger.Error(r.Context(), "stats failed", "error", err)
		respond.FromError(w, err, "Error computing stats")
		return
	}

	respond.JSON(w, http.StatusOK, st)
}

// Export godoc
// @Summary		Export inventory as CSV
// @Tags			inventory
// @Produce		text/csv
// @Security		BearerAuth
// @Success		200	{string}	string					"CSV document"
// @Failure		401	{object}	respond.ErrorResponse	"Invalid or missing token"
// @Router			/api/inventory/export [get]
func (h *InventoryHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	body, err := h.service.ExportCSV(r.Context(), id.UserID)
	if err != nil {
		h.service.logger.Error(r.Context(), "export failed", "error", err)
		respond.FromError(w, err, "Error exporting items")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Archive godoc
// @Summary		Archive inventory to object storage
// @Description	Upload the CSV export to the configured S3 bucket
// @Tags			inventory
// @Produce		json
// @Security		BearerAuth
// @Success		201	{object}	ArchiveResponse
// @Failure		401	{object}	respond.ErrorResponse	"Invalid or missing token"
// @Failure		503	{object}	respond.ErrorResponse	"Archiving is not configured"
// @Failure		500	{object}	respond.ErrorResponse	"Upload failed"
// @Router			/api/inventory/export/archive [post]
func (h *InventoryHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	bucket, key, err := h.service.Archive(r.Context(), id.UserID, id.Email)
	if err != nil {
		if errors.Is(err, common.ErrArchiveDisabled) {
			respond.Error(w, http.StatusServiceUnavailable, "archive disabled", "Object storage is not configured")
			return
		}
		h.service.logger.Error(r.Context(), "archive failed", "error", err)
		respond.FromError(w, err, "Error archiving items")
		return
	}

	respond.JSON(w, http.StatusCreated, ArchiveResponse{Bucket: bucket, Key: key})
}
