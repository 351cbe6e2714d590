package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	customerRepo "fairway/database/repository/customer"
	"fairway/models"
	"fairway/utils"
)

// CustomerHandler serves the CRM endpoints.
type CustomerHandler struct {
	Repo customerRepo.CustomerRepository
}

func NewCustomerHandler(repo customerRepo.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{Repo: repo}
}

func (h *CustomerHandler) CreateCustomerHandler(c *gin.Context) {
	var input models.Customer
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer", err.Error())
		return
	}
	if input.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer", "name is required")
		return
	}

	created, err := h.Repo.Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create customer", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CustomerHandler) GetCustomerHandler(c *gin.Context) {
	customer, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Customer not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) UpdateCustomerHandler(c *gin.Context) {
	var input models.Customer
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer", err.Error())
		return
	}
	input.ID = c.Param("id")

	if err := h.Repo.Update(c.Request.Context(), input); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to update customer", err.Error())
		return
	}
	c.JSON(http.StatusOK, input)
}

func (h *CustomerHandler) DeleteCustomerHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to delete customer", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchCustomersHandler matches name, email or phone against ?q.
func (h *CustomerHandler) SearchCustomersHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing query", "query parameter 'q' is required")
		return
	}
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "25"), 10, 64)

	customers, err := h.Repo.Search(c.Request.Context(), query, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to search customers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
