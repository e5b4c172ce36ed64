package reports

import (
	"net/http"

	"go-ems/internal/domain"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("reports.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reports.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseFilters(c *gin.Context) Filters {
	return ParseFilters(
		c.Query("month"),
		c.Query("year"),
		c.Query("department"),
		c.Query("status"),
	)
}

func (h *Handler) Employees(c *gin.Context) {
	report, err := h.service.Employees(c.Request.Context(), parseFilters(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report, nil)
}

func (h *Handler) Attendance(c *gin.Context) {
	report, err := h.service.Attendance(c.Request.Context(), parseFilters(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report, nil)
}

func (h *Handler) Leaves(c *gin.Context) {
	report, err := h.service.Leaves(c.Request.Context(), parseFilters(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report, nil)
}

func (h *Handler) Payrolls(c *gin.Context) {
	report, err := h.service.Payrolls(c.Request.Context(), parseFilters(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report, nil)
}

func (h *Handler) Overview(c *gin.Context) {
	report, err := h.service.Overview(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report, nil)
}

// Self serves /me/:email. Only Admin may request another employee's report;
// everyone else must match the email exactly.
func (h *Handler) Self(c *gin.Context) {
	target := c.Param("email")
	email := c.GetString("email")
	role := c.GetString("role")

	if role != domain.RoleAdmin && target != email {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	report, err := h.service.Self(c.Request.Context(), target, parseFilters(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report, nil)
}
