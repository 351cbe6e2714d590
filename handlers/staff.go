package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fairway/models"
	"fairway/services/staff"
	"fairway/services/timeclock"
	"fairway/utils"
)

// StaffHandler serves staff accounts, sign-in and the time clock.
type StaffHandler struct {
	Staff     staff.Service
	TimeClock timeclock.Service
}

func NewStaffHandler(staffSvc staff.Service, clockSvc timeclock.Service) *StaffHandler {
	return &StaffHandler{Staff: staffSvc, TimeClock: clockSvc}
}

type registerStaffRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	PIN   string `json:"pin"`
}

// RegisterStaffHandler creates a staff account. Admin only.
func (h *StaffHandler) RegisterStaffHandler(c *gin.Context) {
	var req registerStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	member, err := h.Staff.Register(c.Request.Context(), models.StaffMember{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}, req.PIN)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to register staff member", err.Error())
		return
	}
	c.JSON(http.StatusCreated, member)
}

type loginRequest struct {
	Email string `json:"email"`
	PIN   string `json:"pin"`
}

// LoginHandler exchanges email plus PIN for a session token.
func (h *StaffHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	token, member, err := h.Staff.Authenticate(c.Request.Context(), req.Email, req.PIN)
	if err != nil {
		if errors.Is(err, staff.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", err.Error())
			return
		}
		getLogger(c).Error("login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to sign in", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "staff": member})
}

// ListStaffHandler lists staff members; ?active=true filters to active ones.
func (h *StaffHandler) ListStaffHandler(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	members, err := h.Staff.List(c.Request.Context(), activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": members})
}

// ClockInHandler opens a shift for the signed-in staff member.
func (h *StaffHandler) ClockInHandler(c *gin.Context) {
	staffID := c.GetString("staffID")
	entry, err := h.TimeClock.ClockIn(c.Request.Context(), staffID)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "Failed to clock in", err.Error())
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ClockOutHandler closes the open shift for the signed-in staff member.
func (h *StaffHandler) ClockOutHandler(c *gin.Context) {
	staffID := c.GetString("staffID")
	entry, err := h.TimeClock.ClockOut(c.Request.Context(), staffID)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "Failed to clock out", err.Error())
		return
	}
	c.JSON(http.StatusOK, entry)
}

// TimeReportHandler sums one staff member's hours between ?start and ?end.
func (h *StaffHandler) TimeReportHandler(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing range", "query parameters 'start' and 'end' are required")
		return
	}

	report, err := h.TimeClock.GetReport(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build report", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}
