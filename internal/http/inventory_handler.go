package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blue-star-api/internal/domain"
	"blue-star-api/internal/service"
	"blue-star-api/internal/validation"
)

// InventoryHandler mantiene dependencias para endpoints de items.
type InventoryHandler struct {
	logger  *zap.Logger
	invServ *service.InventoryService
	dev     bool
}

func NewInventoryHandler(logger *zap.Logger, invServ *service.InventoryService, dev bool) *InventoryHandler {
	return &InventoryHandler{
		logger:  logger,
		invServ: invServ,
		dev:     dev,
	}
}

// Search maneja GET /inventory, con ?search= y ?categoryId=.
func (h *InventoryHandler) Search(c *gin.Context) {
	search := validation.SanitizeField(c.Query("search"))

	var categoryID int64
	if raw := c.Query("categoryId"); raw != "" {
		id, ok := validation.ParseID(raw)
		if !ok {
			respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "Invalid category id")
			return
		}
		categoryID = id
	}

	found, err := h.invServ.SearchItems(c.Request.Context(), search, categoryID)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			respondError(c, http.StatusBadRequest, verr.Code, verr.Message)
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, http.StatusNotFound, domain.CodeValidationErr, "Category does not exist")
		case errors.Is(err, service.ErrNoResults):
			respondError(c, http.StatusNotFound, domain.CodeValidationErr, "No items found")
		default:
			h.logger.Error("item search failed", zap.Error(err))
			respondInternal(c, h.dev, domain.CodeDatabaseError, "Error occurred while searching for items", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": found})
}

// Create maneja POST /inventory.
func (h *InventoryHandler) Create(c *gin.Context) {
	var req struct {
		ItemName   string `json:"itemName"`
		CategoryID int64  `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "Missing or invalid item name")
		return
	}

	item, err := h.invServ.CreateItem(c.Request.Context(), req.ItemName, req.CategoryID)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			respondError(c, http.StatusBadRequest, verr.Code, verr.Message)
		case errors.Is(err, service.ErrItemExists):
			respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "Item already exists")
		default:
			h.logger.Error("item create failed", zap.Error(err))
			respondInternal(c, h.dev, domain.CodeDatabaseError, "Item creation failed", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "Item successfully created!", "data": item})
}

// Update maneja PUT /inventory/:id.
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "Invalid item ID provided")
		return
	}

	var req struct {
		NewItemName string `json:"newItemName"`
		CategoryID  int64  `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "Invalid item name")
		return
	}

	item, err := h.invServ.UpdateItem(c.Request.Context(), id, req.NewItemName, req.CategoryID)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			respondError(c, http.StatusBadRequest, verr.Code, verr.Message)
		case errors.Is(err, service.ErrItemNotFound):
			respondError(c, http.StatusNotFound, domain.CodeValidationErr, "The item you are trying to update does not exist")
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, http.StatusNotFound, domain.CodeValidationErr, "Category does not exist")
		case errors.Is(err, service.ErrItemExists):
			respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "Item already exists")
		default:
			h.logger.Error("item update failed", zap.Error(err))
			respondInternal(c, h.dev, domain.CodeDatabaseError, "Error occurred while updating the item", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": item})
}

// Delete maneja DELETE /inventory/:id.
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "Invalid item ID provided")
		return
	}

	if err := h.invServ.DeleteItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			respondError(c, http.StatusNotFound, domain.CodeValidationErr, "Item not found")
			return
		}
		h.logger.Error("item delete failed", zap.Error(err))
		respondInternal(c, h.dev, domain.CodeDatabaseError, "Error occurred while deleting the item", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Item deleted successfully"})
}
