package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/registers/stock"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/http/v1/dto"
)

// StockHandler handles the stock register endpoints.
type StockHandler struct {
	*BaseHandler
	service *stock.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, service *stock.Service) *StockHandler {
	return &StockHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /registers/stock
func (h *StockHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	balances, err := h.service.GetBalances(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{Items: balances, TotalCount: len(balances)})
}

// GetByProduct handles GET /registers/stock/:id
func (h *StockHandler) GetByProduct(c *gin.Context) {
	ctx := c.Request.Context()

	productID, ok := h.ParseID(c)
	if !ok {
		return
	}

	balance, err := h.service.GetBalance(ctx, productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, balance)
}
