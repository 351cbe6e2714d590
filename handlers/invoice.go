package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	invoiceRepo "fairway/database/repository/invoice"
	"fairway/models"
	"fairway/services/invoice"
	"fairway/utils"
)

// InvoiceHandler serves suppliers, invoices and venue settings.
type InvoiceHandler struct {
	Service invoice.Service
	Repo    invoiceRepo.InvoiceRepository
}

func NewInvoiceHandler(svc invoice.Service, repo invoiceRepo.InvoiceRepository) *InvoiceHandler {
	return &InvoiceHandler{Service: svc, Repo: repo}
}

func (h *InvoiceHandler) CreateSupplierHandler(c *gin.Context) {
	var input models.Supplier
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid supplier", err.Error())
		return
	}
	if input.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid supplier", "name is required")
		return
	}

	created, err := h.Repo.CreateSupplier(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create supplier", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *InvoiceHandler) ListSuppliersHandler(c *gin.Context) {
	suppliers, err := h.Repo.ListSuppliers(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list suppliers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}

type createInvoiceRequest struct {
	SupplierID string               `json:"supplierId"`
	Date       string               `json:"date"`
	Items      []models.InvoiceItem `json:"items"`
	WHTRate    *float64             `json:"whtRate"`
}

// CreateInvoiceHandler issues a numbered invoice with withholding tax
// deducted from the payable total.
func (h *InvoiceHandler) CreateInvoiceHandler(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid invoice", err.Error())
		return
	}

	created, err := h.Service.CreateInvoice(c.Request.Context(), req.SupplierID, req.Date, req.Items, req.WHTRate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to create invoice", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *InvoiceHandler) GetInvoiceHandler(c *gin.Context) {
	inv, err := h.Service.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Invoice not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, inv)
}

// ListMonthInvoicesHandler lists invoices issued in ?month (YYYY-MM).
func (h *InvoiceHandler) ListMonthInvoicesHandler(c *gin.Context) {
	yearMonth := c.Query("month")
	if yearMonth == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing month", "query parameter 'month' is required (YYYY-MM)")
		return
	}
	invoices, err := h.Service.ListMonth(c.Request.Context(), yearMonth)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list invoices", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *InvoiceHandler) GetSettingsHandler(c *gin.Context) {
	settings, err := h.Repo.GetAllSettings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// PutSettingsHandler upserts venue settings. Admin only.
func (h *InvoiceHandler) PutSettingsHandler(c *gin.Context) {
	var input map[string]string
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid settings", err.Error())
		return
	}
	for key, value := range input {
		if err := h.Repo.PutSetting(c.Request.Context(), key, value); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to save settings", err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(input)})
}
