package handler

import (
	"github.com/TheAdijagtap/erpx/internal/application/service"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/dto/request"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/dto/response"
	"github.com/TheAdijagtap/erpx/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// GoodsReceiptHandler handles goods receipt HTTP requests
type GoodsReceiptHandler struct {
	receiptService *service.GoodsReceiptService
}

// NewGoodsReceiptHandler creates a new goods receipt handler
func NewGoodsReceiptHandler(receiptService *service.GoodsReceiptService) *GoodsReceiptHandler {
	return &GoodsReceiptHandler{receiptService: receiptService}
}

// List handles listing goods receipts
func (h *GoodsReceiptHandler) List(c *gin.Context) {
	result, err := h.receiptService.ListGoodsReceipts(c.Request.Context(), bindPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Goods receipts retrieved successfully", result)
}

// Create handles creating a goods receipt. Creation projects stock
// levels and ledger entries, so the route sits behind the idempotency
// middleware.
func (h *GoodsReceiptHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateGoodsReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	receipt, err := h.receiptService.CreateGoodsReceipt(c.Request.Context(), &service.CreateGoodsReceiptInput{
		UserID:          *userID,
		SupplierID:      parseOptionalUUID(req.SupplierID),
		PurchaseOrderID: parseOptionalUUID(req.PurchaseOrderID),
		Date:            req.Date,
		Tax:             toTaxInput(req.Tax),
		Lines:           toReceiptLines(req.Lines),
		Charges:         toCharges(req.Charges),
		Notes:           req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Goods receipt created successfully", receipt)
}

// Get handles getting a single goods receipt
func (h *GoodsReceiptHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid goods receipt ID")
		return
	}

	receipt, err := h.receiptService.GetGoodsReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Goods receipt retrieved successfully", receipt)
}

// Update handles updating the header of a goods receipt. Lines are
// immutable once their stock projection has been applied.
func (h *GoodsReceiptHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid goods receipt ID")
		return
	}

	var req request.UpdateGoodsReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}
	if req.Lines != nil {
		response.Error(c, apperror.ErrReceiptImmutable)
		return
	}

	receipt, err := h.receiptService.UpdateGoodsReceipt(c.Request.Context(), &service.UpdateGoodsReceiptInput{
		ID:     id,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Goods receipt updated successfully", receipt)
}

// Delete handles deleting a goods receipt and reversing its stock effect
func (h *GoodsReceiptHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid goods receipt ID")
		return
	}

	if err := h.receiptService.DeleteGoodsReceipt(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Goods receipt deleted successfully", nil)
}
