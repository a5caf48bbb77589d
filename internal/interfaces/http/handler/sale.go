package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	salesapp "github.com/storehub/backend/internal/application/sales"
	"github.com/storehub/backend/internal/interfaces/http/dto"
)

// SaleHandler handles sale endpoints
type SaleHandler struct {
	BaseHandler
	saleService *salesapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *salesapp.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List returns all sales
func (h *SaleHandler) List(c *gin.Context) {
	resp, err := h.saleService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get returns one sale
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	resp, err := h.saleService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Create records a sale
func (h *SaleHandler) Create(c *gin.Context) {
	var req salesapp.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.saleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Delete removes a sale and restores stock
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// MonthlyStats returns revenue statistics for one month
func (h *SaleHandler) MonthlyStats(c *gin.Context) {
	var req dto.MonthRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.saleService.MonthlyStats(c.Request.Context(), req.Year, time.Month(req.Month))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// RegisterRoutes registers sale endpoints
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sale := rg.Group("/sale")
	{
		sale.GET("", h.List)
		sale.GET("/stats/monthly", h.MonthlyStats)
		sale.GET("/:id", h.Get)
		sale.POST("", h.Create)
		sale.DELETE("/:id", h.Delete)
	}
}
