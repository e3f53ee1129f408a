package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Vyora-Platform/vendor-api/internal/application/service"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/internal/domain/repository"
	"github.com/Vyora-Platform/vendor-api/internal/presentation/http/dto/request"
	"github.com/Vyora-Platform/vendor-api/internal/presentation/http/dto/response"
	"github.com/Vyora-Platform/vendor-api/pkg/pagination"
)

// StockHandler handles stock movement HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// StockIn increases a product's stock and records the movement
func (h *StockHandler) StockIn(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.StockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	supplierID, err := parseOptionalUUID(stringOrEmpty(req.SupplierID))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	movement, err := h.stockService.StockIn(c.Request.Context(), &service.StockInInput{
		ProductID:  productID,
		Quantity:   req.Quantity,
		Reason:     req.Reason,
		SupplierID: supplierID,
		BatchNo:    req.BatchNo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock added successfully", movement)
}

// StockOut decreases a product's stock and records the movement
func (h *StockHandler) StockOut(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.StockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	movement, err := h.stockService.StockOut(c.Request.Context(), productID, req.Quantity, req.Reason, nil)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock removed successfully", movement)
}

// Reserve checks availability without changing stock
func (h *StockHandler) Reserve(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.stockService.Reserve(c.Request.Context(), productID, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock is available", gin.H{
		"product_id": productID,
		"quantity":   req.Quantity,
		"available":  true,
	})
}

// GetStockLevel returns a product's quantity and its level classification
func (h *StockHandler) GetStockLevel(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	level, err := h.stockService.GetStockLevel(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock level retrieved successfully", level)
}

// ListMovements lists stock movements with optional filters
func (h *StockHandler) ListMovements(c *gin.Context) {
	var filter request.MovementFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.MovementFilterParams{
		Pagination: pageParams(filter.Page, filter.PerPage),
	}

	productID, err := parseOptionalUUID(filter.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}
	params.ProductID = productID

	if filter.Direction != "" {
		direction := enum.StockDirection(filter.Direction)
		params.Direction = &direction
	}

	if params.StartDate, err = parseOptionalDate(filter.StartDate); err != nil {
		response.BadRequest(c, "Invalid start date")
		return
	}
	if params.EndDate, err = parseOptionalDate(filter.EndDate); err != nil {
		response.BadRequest(c, "Invalid end date")
		return
	}

	movements, total, err := h.stockService.GetMovements(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(movements, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Stock movements retrieved successfully", result)
}

// ListLowStock lists products at or below the low stock threshold
func (h *StockHandler) ListLowStock(c *gin.Context) {
	products, err := h.stockService.GetLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved successfully", products)
}
