package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"apollo-survey-backend/internal/database/models"
	apperrors "apollo-survey-backend/internal/errors"
	"apollo-survey-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SurveyHandler handles HTTP requests for survey operations
type SurveyHandler struct {
	surveyService service.SurveyServiceInterface
	topicService  service.TopicServiceInterface
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(
	surveyService service.SurveyServiceInterface,
	topicService service.TopicServiceInterface,
) *SurveyHandler {
	return &SurveyHandler{
		surveyService: surveyService,
		topicService:  topicService,
	}
}

// ListSurveys handles GET /surveys
func (h *SurveyHandler) ListSurveys(c *gin.Context) {
	surveys, err := h.surveyService.FindAllSurveys()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, surveys)
}

// GetSurvey handles GET /surveys/:id
func (h *SurveyHandler) GetSurvey(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid survey ID"})
		return
	}

	survey, err := h.surveyService.FindByID(uint(id))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, survey)
}

// CreateSurvey handles POST /surveys
func (h *SurveyHandler) CreateSurvey(c *gin.Context) {
	var survey models.Survey
	if err := c.ShouldBindJSON(&survey); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	survey.ID = 0

	saved, err := h.surveyService.Save(&survey)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// CreateSurveyRequest handles POST /topics/:id/surveys, building a fresh
// survey with all submitted questions attached in one unit
func (h *SurveyHandler) CreateSurveyRequest(c *gin.Context) {
	topicID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic ID"})
		return
	}

	var questions []service.QuestionSubmission
	if err := c.ShouldBindJSON(&questions); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.topicService.FindByID(uint(topicID))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	survey, err := h.surveyService.SaveRequest(questions, topic)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if strings.Contains(err.Error(), "validation failed") || strings.Contains(err.Error(), "invalid question type") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, survey)
}

// DeleteSurvey handles DELETE /surveys/:id
func (h *SurveyHandler) DeleteSurvey(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid survey ID"})
		return
	}

	if err := h.surveyService.Delete(uint(id)); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
