package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/facturly/facturly-backend/internal/core/ports/services"
	"github.com/facturly/facturly-backend/internal/dto"
	"github.com/facturly/facturly-backend/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers the invoice routes, including duplication
// and the PDF download.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoice_id", h.getInvoice)
		invoices.PUT("/:invoice_id", h.updateInvoice)
		invoices.DELETE("/:invoice_id", h.deleteInvoice)
		invoices.POST("/:invoice_id/duplicate", h.duplicateInvoice)
		invoices.GET("/:invoice_id/pdf", h.downloadInvoicePDF)
	}
}

func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), userID, req)
	if err != nil {
		logger.Warn("Failed to create invoice", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

func (h *invoiceHandler) listInvoices(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.invoiceService.ListInvoices(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *invoiceHandler) getInvoice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), userID, c.Param("invoice_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), userID, c.Param("invoice_id"), req)
	if err != nil {
		logger.Warn("Failed to update invoice", slog.String("invoice_id", c.Param("invoice_id")), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), userID, c.Param("invoice_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *invoiceHandler) duplicateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.DuplicateInvoice(c.Request.Context(), userID, c.Param("invoice_id"))
	if err != nil {
		logger.Warn("Failed to duplicate invoice", slog.String("invoice_id", c.Param("invoice_id")), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// downloadInvoicePDF streams the rendered document as an attachment.
func (h *invoiceHandler) downloadInvoicePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	filename, data, err := h.invoiceService.RenderInvoicePDF(c.Request.Context(), userID, c.Param("invoice_id"))
	if err != nil {
		logger.Error("Failed to render invoice PDF", slog.String("invoice_id", c.Param("invoice_id")), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, "application/pdf", data)
}
