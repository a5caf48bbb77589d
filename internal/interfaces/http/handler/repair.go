package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	repairsapp "github.com/storehub/backend/internal/application/repairs"
	"github.com/storehub/backend/internal/interfaces/http/dto"
)

// RepairHandler handles repair workflow endpoints
type RepairHandler struct {
	BaseHandler
	repairService *repairsapp.RepairService
}

// NewRepairHandler creates a new RepairHandler
func NewRepairHandler(repairService *repairsapp.RepairService) *RepairHandler {
	return &RepairHandler{repairService: repairService}
}

// List returns repairs, optionally filtered by ?customer=
func (h *RepairHandler) List(c *gin.Context) {
	resp, err := h.repairService.List(c.Request.Context(), c.Query("customer"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get returns one repair
func (h *RepairHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid repair ID")
		return
	}

	resp, err := h.repairService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Create registers a device for repair
func (h *RepairHandler) Create(c *gin.Context) {
	var req repairsapp.CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.repairService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update edits intake details
func (h *RepairHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid repair ID")
		return
	}

	var req repairsapp.UpdateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.repairService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// MarkFixed records a successful repair
func (h *RepairHandler) MarkFixed(c *gin.Context) {
	h.decide(c, h.repairService.MarkFixed)
}

// MarkNotFixed records that the device could not be repaired
func (h *RepairHandler) MarkNotFixed(c *gin.Context) {
	h.decide(c, h.repairService.MarkNotFixed)
}

func (h *RepairHandler) decide(c *gin.Context, outcome func(context.Context, uuid.UUID) (*repairsapp.RepairResponse, error)) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid repair ID")
		return
	}

	resp, err := outcome(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Deliver hands the device back to the customer
func (h *RepairHandler) Deliver(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid repair ID")
		return
	}

	// Body is optional; an empty body delivers now
	var req repairsapp.DeliverRepairRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	resp, err := h.repairService.Deliver(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a repair job
func (h *RepairHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid repair ID")
		return
	}

	if err := h.repairService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// MonthlyStats returns repair statistics for one month
func (h *RepairHandler) MonthlyStats(c *gin.Context) {
	var req dto.MonthRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.repairService.MonthlyStats(c.Request.Context(), req.Year, time.Month(req.Month))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// RegisterRoutes registers repair endpoints
func (h *RepairHandler) RegisterRoutes(rg *gin.RouterGroup) {
	repair := rg.Group("/repair")
	{
		repair.GET("", h.List)
		repair.GET("/stats/monthly", h.MonthlyStats)
		repair.GET("/:id", h.Get)
		repair.POST("", h.Create)
		repair.PATCH("/:id", h.Update)
		repair.PATCH("/:id/fixed", h.MarkFixed)
		repair.PATCH("/:id/not-fixed", h.MarkNotFixed)
		repair.PATCH("/:id/deliver", h.Deliver)
		repair.DELETE("/:id", h.Delete)
	}
}
