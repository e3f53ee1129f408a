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

// LedgerHandler handles khata ledger HTTP requests
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// CreatePosting appends a manual ledger entry
func (h *LedgerHandler) CreatePosting(c *gin.Context) {
	var req request.CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, err := parseOptionalUUID(stringOrEmpty(req.CustomerID))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}
	supplierID, err := parseOptionalUUID(stringOrEmpty(req.SupplierID))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	posting, err := h.ledgerService.CreatePosting(c.Request.Context(), &service.CreatePostingInput{
		CustomerID:         customerID,
		SupplierID:         supplierID,
		Direction:          enum.LedgerDirection(req.Direction),
		Amount:             req.Amount,
		Category:           req.Category,
		PaymentMethod:      req.PaymentMethod,
		ExcludeFromBalance: req.ExcludeFromBalance,
		Note:               req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Posting created successfully", posting)
}

// GetCustomerBalance returns a customer's folded khata balance
func (h *LedgerHandler) GetCustomerBalance(c *gin.Context) {
	h.partyBalance(c, enum.PartyTypeCustomer)
}

// GetSupplierBalance returns a supplier's folded khata balance
func (h *LedgerHandler) GetSupplierBalance(c *gin.Context) {
	h.partyBalance(c, enum.PartyTypeSupplier)
}

func (h *LedgerHandler) partyBalance(c *gin.Context, partyType enum.PartyType) {
	partyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid party ID")
		return
	}

	balance, err := h.ledgerService.GetPartyBalance(c.Request.Context(), partyType, partyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Balance retrieved successfully", balance)
}

// ListTransactions lists ledger postings with optional filters
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	var filter request.LedgerFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.LedgerFilterParams{
		Pagination: pageParams(filter.Page, filter.PerPage),
		Category:   filter.Category,
	}

	customerID, err := parseOptionalUUID(filter.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}
	params.CustomerID = customerID

	supplierID, err := parseOptionalUUID(filter.SupplierID)
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}
	params.SupplierID = supplierID

	if filter.Direction != "" {
		direction := enum.LedgerDirection(filter.Direction)
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

	transactions, total, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(transactions, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Ledger transactions retrieved successfully", result)
}
