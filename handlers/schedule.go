package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	scheduleRepo "fairway/database/repository/schedule"
	"fairway/models"
	"fairway/services/availability"
	"fairway/utils"
)

// ScheduleHandler serves availability queries and schedule-record CRUD.
type ScheduleHandler struct {
	Availability availability.Service
	Repo         scheduleRepo.ScheduleRepository
	Cache        *redis.Client
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc availability.Service, repo scheduleRepo.ScheduleRepository, cache *redis.Client) *ScheduleHandler {
	return &ScheduleHandler{Availability: svc, Repo: repo, Cache: cache}
}

// GetAvailabilityHandler returns one owner's resolved slot grid for a date.
// GET /api/schedule/:ownerId/availability?date=2006-01-02&granularity=30
func (h *ScheduleHandler) GetAvailabilityHandler(c *gin.Context) {
	ownerID := c.Param("ownerId")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date", "query parameter 'date' is required")
		return
	}
	granularity := 0
	if g := c.Query("granularity"); g != "" {
		parsed, err := strconv.Atoi(g)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid granularity", "granularity must be a positive integer")
			return
		}
		granularity = parsed
	}

	grid, err := h.Availability.GetDayGrid(c.Request.Context(), ownerID, date, granularity)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to resolve availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, grid)
}

// GetSummariesHandler returns day summaries for a date range.
// GET /api/schedule/:ownerId/summaries?start=2006-01-02&end=2006-01-31
func (h *ScheduleHandler) GetSummariesHandler(c *gin.Context) {
	ownerID := c.Param("ownerId")
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing range", "query parameters 'start' and 'end' are required")
		return
	}

	summaries, err := h.Availability.GetRangeSummaries(c.Request.Context(), ownerID, start, end)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to summarize range", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ownerId": ownerID, "days": summaries})
}

// GetDayLayoutHandler returns column-packed blocks for every booking on a
// date, for dense calendar rendering across owners.
// GET /api/calendar/layout?date=2006-01-02
func (h *ScheduleHandler) GetDayLayoutHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date", "query parameter 'date' is required")
		return
	}
	blocks, err := h.Availability.GetDayLayout(c.Request.Context(), date)
	if err != nil {
		getLogger(c).Error("day layout failed", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to lay out calendar", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "blocks": blocks})
}

// PutWeeklyEntryHandler upserts the weekly template row for one day-of-week.
func (h *ScheduleHandler) PutWeeklyEntryHandler(c *gin.Context) {
	var entry models.WeeklyScheduleEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid weekly entry", err.Error())
		return
	}
	entry.OwnerID = c.Param("ownerId")
	if entry.DayOfWeek < 0 || entry.DayOfWeek > 6 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid weekly entry", "dayOfWeek must be 0-6")
		return
	}
	if err := h.Repo.UpsertWeeklyEntry(c.Request.Context(), entry); err != nil {
		getLogger(c).Error("weekly entry upsert failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save weekly entry", err.Error())
		return
	}
	h.invalidate(c, entry.OwnerID)
	c.JSON(http.StatusOK, entry)
}

// GetWeeklyEntriesHandler lists the owner's weekly template.
func (h *ScheduleHandler) GetWeeklyEntriesHandler(c *gin.Context) {
	entries, err := h.Repo.GetWeeklyEntries(c.Request.Context(), c.Param("ownerId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch weekly entries", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// CreateBlockHandler adds a recurring block (e.g. a weekly lunch break).
func (h *ScheduleHandler) CreateBlockHandler(c *gin.Context) {
	var block models.RecurringBlock
	if err := c.ShouldBindJSON(&block); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid recurring block", err.Error())
		return
	}
	block.OwnerID = c.Param("ownerId")
	if block.DayOfWeek < 0 || block.DayOfWeek > 6 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid recurring block", "dayOfWeek must be 0-6")
		return
	}
	if err := h.Repo.CreateRecurringBlock(c.Request.Context(), block); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create recurring block", err.Error())
		return
	}
	h.invalidate(c, block.OwnerID)
	c.JSON(http.StatusCreated, block)
}

// DeleteBlockHandler removes a recurring block.
func (h *ScheduleHandler) DeleteBlockHandler(c *gin.Context) {
	ownerID := c.Param("ownerId")
	if err := h.Repo.DeleteRecurringBlock(c.Request.Context(), ownerID, c.Param("blockId")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Recurring block not found", err.Error())
		return
	}
	h.invalidate(c, ownerID)
	c.Status(http.StatusNoContent)
}

// CreateOverrideHandler adds a one-off date override.
func (h *ScheduleHandler) CreateOverrideHandler(c *gin.Context) {
	var override models.DateOverride
	if err := c.ShouldBindJSON(&override); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date override", err.Error())
		return
	}
	override.OwnerID = c.Param("ownerId")
	if override.OverrideType != models.OverrideAvailable && override.OverrideType != models.OverrideUnavailable {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date override", "overrideType must be 'available' or 'unavailable'")
		return
	}
	if err := h.Repo.CreateOverride(c.Request.Context(), override); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create override", err.Error())
		return
	}
	h.invalidate(c, override.OwnerID)
	c.JSON(http.StatusCreated, override)
}

// DeleteOverrideHandler removes a date override.
func (h *ScheduleHandler) DeleteOverrideHandler(c *gin.Context) {
	ownerID := c.Param("ownerId")
	if err := h.Repo.DeleteOverride(c.Request.Context(), ownerID, c.Param("overrideId")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Override not found", err.Error())
		return
	}
	h.invalidate(c, ownerID)
	c.Status(http.StatusNoContent)
}

func (h *ScheduleHandler) invalidate(c *gin.Context, ownerID string) {
	if h.Cache == nil {
		return
	}
	if err := utils.InvalidateAvailability(c.Request.Context(), h.Cache, ownerID); err != nil {
		getLogger(c).Warn("availability cache invalidation failed",
			zap.String("ownerID", ownerID), zap.Error(err))
	}
}
