package handlers

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "apollo-survey-backend/internal/errors"
	"apollo-survey-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContextHandler handles HTTP requests for survey context operations
type ContextHandler struct {
	contextService service.SurveyContextServiceInterface
}

// NewContextHandler creates a new context handler
func NewContextHandler(contextService service.SurveyContextServiceInterface) *ContextHandler {
	return &ContextHandler{
		contextService: contextService,
	}
}

// ListContexts handles GET /contexts
func (h *ContextHandler) ListContexts(c *gin.Context) {
	contexts, err := h.contextService.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contexts)
}

// GetContext handles GET /contexts/:id
func (h *ContextHandler) GetContext(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid context ID"})
		return
	}

	context, err := h.contextService.FindByID(uint(id))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, context)
}

// CreateContext handles POST /contexts
func (h *ContextHandler) CreateContext(c *gin.Context) {
	var req service.SaveContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	context, err := h.contextService.Save(&req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if strings.Contains(err.Error(), "validation failed") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, context)
}

// DeleteContext handles DELETE /contexts/:id
func (h *ContextHandler) DeleteContext(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid context ID"})
		return
	}

	if err := h.contextService.Delete(uint(id)); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
