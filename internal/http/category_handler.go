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

// CategoryHandler mantiene dependencias para endpoints de categorias.
type CategoryHandler struct {
	logger  *zap.Logger
	invServ *service.InventoryService
	dev     bool
}

func NewCategoryHandler(logger *zap.Logger, invServ *service.InventoryService, dev bool) *CategoryHandler {
	return &CategoryHandler{
		logger:  logger,
		invServ: invServ,
		dev:     dev,
	}
}

// Search maneja GET /category, con ?search= por id o por nombre.
func (h *CategoryHandler) Search(c *gin.Context) {
	search := validation.SanitizeField(c.Query("search"))

	found, err := h.invServ.SearchCategories(c.Request.Context(), search)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			respondError(c, http.StatusBadRequest, verr.Code, verr.Message)
		case errors.Is(err, service.ErrNoResults):
			respondError(c, http.StatusNotFound, domain.CodeValidationErr, "No categories found")
		default:
			h.logger.Error("category search failed", zap.Error(err))
			respondInternal(c, h.dev, domain.CodeDatabaseError, "Error occurred while searching for category", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Categories found", "data": found})
}

// Create maneja POST /category.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req struct {
		CategoryName string `json:"categoryName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.CategoryName == "" {
		respondError(c, http.StatusBadRequest, domain.CodeMissingFields, "Missing category name")
		return
	}

	category, err := h.invServ.CreateCategory(c.Request.Context(), req.CategoryName)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			respondError(c, http.StatusBadRequest, verr.Code, verr.Message)
		case errors.Is(err, service.ErrCategoryExists):
			respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "Category already exists")
		default:
			h.logger.Error("category create failed", zap.Error(err))
			respondInternal(c, h.dev, domain.CodeDatabaseError, "Error occurred while creating category", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "Category successfully created", "data": category})
}

// Update maneja PUT /category/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "Invalid ID provided")
		return
	}

	var req struct {
		CategoryName string `json:"categoryName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.CodeMissingFields, "Missing category name")
		return
	}

	if err := h.invServ.UpdateCategory(c.Request.Context(), id, req.CategoryName); err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			respondError(c, http.StatusBadRequest, verr.Code, verr.Message)
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, http.StatusNotFound, domain.CodeValidationErr, "The category you are trying to update does not exist")
		case errors.Is(err, service.ErrCategoryExists):
			respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "Category already exists")
		default:
			h.logger.Error("category update failed", zap.Error(err))
			respondInternal(c, h.dev, domain.CodeDatabaseError, "Error updating category", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Category successfully updated"})
}

// Delete maneja DELETE /category/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "Invalid ID provided")
		return
	}

	if err := h.invServ.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, domain.CodeValidationErr, "The category you are trying to delete does not exist")
			return
		}
		h.logger.Error("category delete failed", zap.Error(err))
		respondInternal(c, h.dev, domain.CodeDatabaseError, "Error occurred when deleting category", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Category successfully deleted"})
}
