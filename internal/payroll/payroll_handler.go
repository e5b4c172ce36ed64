package payroll

import (
	"net/http"
	"strconv"
	"strings"

	"go-ems/internal/domain"
	"go-ems/internal/middleware"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Generate returns 201 even when only part of the run succeeded; the errors
// list carries the per-employee failures.
func (h *Handler) Generate(c *gin.Context) {
	var req GeneratePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	middleware.StoreIdempotentResult(c, h.rdb, result)
	response.Success(c, http.StatusCreated, result, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := h.parseFilter(c)
	resp, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")
	role := c.GetString("role")
	email := c.GetString("email")

	resp, err := h.service.GetByEmployee(c.Request.Context(), employeeID, email, domain.IsPrivileged(role))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Summary(c *gin.Context) {
	filter := h.parseFilter(c)
	resp, err := h.service.Summary(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Trend(c *gin.Context) {
	employeeID := c.Param("employeeId")
	role := c.GetString("role")
	email := c.GetString("email")

	resp, err := h.service.Trend(c.Request.Context(), employeeID, email, domain.IsPrivileged(role))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// parseFilter accepts month either as a number (1..12) or a month name.
func (h *Handler) parseFilter(c *gin.Context) ListFilter {
	filter := ListFilter{
		Status:     strings.TrimSpace(c.Query("status")),
		Department: strings.TrimSpace(c.Query("department")),
	}
	if month := strings.TrimSpace(c.Query("month")); month != "" {
		if n, err := strconv.Atoi(month); err == nil {
			filter.Month = MonthName(n)
		} else {
			filter.Month = month
		}
	}
	if year := strings.TrimSpace(c.Query("year")); year != "" {
		if n, err := strconv.Atoi(year); err == nil {
			filter.Year = n
		}
	}
	return filter
}
