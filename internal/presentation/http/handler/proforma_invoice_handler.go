package handler

import (
	"github.com/TheAdijagtap/erpx/internal/application/service"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/dto/request"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ProformaInvoiceHandler handles proforma invoice HTTP requests
type ProformaInvoiceHandler struct {
	invoiceService *service.ProformaInvoiceService
}

// NewProformaInvoiceHandler creates a new proforma invoice handler
func NewProformaInvoiceHandler(invoiceService *service.ProformaInvoiceService) *ProformaInvoiceHandler {
	return &ProformaInvoiceHandler{invoiceService: invoiceService}
}

// List handles listing proforma invoices
func (h *ProformaInvoiceHandler) List(c *gin.Context) {
	result, err := h.invoiceService.ListProformaInvoices(c.Request.Context(), bindPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Proforma invoices retrieved successfully", result)
}

// Create handles creating a proforma invoice
func (h *ProformaInvoiceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateProformaInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	invoice, err := h.invoiceService.CreateProformaInvoice(c.Request.Context(), &service.CreateProformaInvoiceInput{
		UserID:     *userID,
		CustomerID: parseOptionalUUID(req.CustomerID),
		Date:       req.Date,
		Tax:        toTaxInput(req.Tax),
		Lines:      toDocumentLines(req.Lines),
		Charges:    toCharges(req.Charges),
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Proforma invoice created successfully", invoice)
}

// Get handles getting a single proforma invoice
func (h *ProformaInvoiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid proforma invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetProformaInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Proforma invoice retrieved successfully", invoice)
}

// Update handles updating a proforma invoice
func (h *ProformaInvoiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid proforma invoice ID")
		return
	}

	var req request.UpdateProformaInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	input := &service.UpdateProformaInvoiceInput{
		ID:         id,
		CustomerID: parseOptionalUUID(req.CustomerID),
		Date:       req.Date,
		Status:     req.Status,
		Notes:      req.Notes,
	}
	if req.Tax != nil {
		tax := toTaxInput(*req.Tax)
		input.Tax = &tax
	}
	if req.Lines != nil {
		input.Lines = toDocumentLines(req.Lines)
	}
	if req.Charges != nil {
		input.Charges = toCharges(req.Charges)
	}

	invoice, err := h.invoiceService.UpdateProformaInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Proforma invoice updated successfully", invoice)
}

// Delete handles deleting a proforma invoice
func (h *ProformaInvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid proforma invoice ID")
		return
	}

	if err := h.invoiceService.DeleteProformaInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Proforma invoice deleted successfully", nil)
}
