package api

import (
	"errors"
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CloneHandler struct {
	cloneUseCase  usecase.CloneUseCase
	statusUseCase usecase.CloneStatusUseCase
}

func NewCloneHandler(cloneUseCase usecase.CloneUseCase, statusUseCase usecase.CloneStatusUseCase) *CloneHandler {
	return &CloneHandler{
		cloneUseCase:  cloneUseCase,
		statusUseCase: statusUseCase,
	}
}

// @Summary Clone account
// @Description Duplicate a seller account's whole catalog into a new account; the copy runs in background batches tracked by the returned job
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Source account ID"
// @Param request body reqdto.CloneAccountRequest true "New account attributes"
// @Success 202 {object} resdto.CloneAcceptedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/accounts/{id}/clone [post]
func (h *CloneHandler) CloneAccount(c *gin.Context) {
	sourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid account ID",
		})
		return
	}

	var req reqdto.CloneAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.cloneUseCase.Clone(c.Request.Context(), sourceID, usecase.NewAccountAttributes{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Slug:     req.Slug,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSourceAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Source account not found",
			})
		case errors.Is(err, usecase.ErrInvalidAccountAttributes):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid new account attributes",
			})
		case errors.Is(err, usecase.ErrAccountAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Account email or slug already taken",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusAccepted, resdto.FromCloneResult(result))
}

// @Summary Clone job status
// @Description Poll the progress of a clone job until it reaches a terminal status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.JobStatusResponse
// @Success 204 "Job record not visible yet"
// @Failure 400 {object} map[string]string
// @Router /admin/clone-jobs/{id} [get]
func (h *CloneHandler) GetJobStatus(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid job ID",
		})
		return
	}

	view, err := h.statusUseCase.GetStatus(c.Request.Context(), jobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if view == nil {
		// No status yet: the record may not be visible in the instant after
		// orchestration. Pollers should simply try again.
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, resdto.FromJobStatusView(view))
}
