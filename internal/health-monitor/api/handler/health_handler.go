package handler

import (
	"VCS_Registry_Health/internal/health-monitor/api/dto/request"
	"VCS_Registry_Health/internal/health-monitor/api/dto/response"
	apperrors "VCS_Registry_Health/internal/health-monitor/errors"
	"VCS_Registry_Health/internal/health-monitor/service"
	"VCS_Registry_Health/pkg/middleware"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//go:generate mockgen -source=health_handler.go -destination=../../mocks/api/handler/mock_health_handler.go -package=mockhandler

type HealthHandler interface {
	GetServiceHealth() gin.HandlerFunc
	GetServiceHealthLogs() gin.HandlerFunc
	TriggerServiceHealthCheck() gin.HandlerFunc
}

type healthHandler struct {
	logger        *zap.Logger
	healthService service.HealthService
}

func (*healthHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (h *healthHandler) GetServiceHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		svc, err := h.healthService.GetServiceHealth(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServiceNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Service not found",
				})
			default:
				err = fmt.Errorf("HealthHandler.GetServiceHealth: %w", err)
				h.loggingError(c, err, fmt.Sprintf("failed to get health of service %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.NewServiceHealthResponse(svc))
	}
}

func (h *healthHandler) GetServiceHealthLogs() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var query request.ProbeRecordQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: h.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid query parameters",
				})
			}
			return
		}
		records, err := h.healthService.GetProbeRecords(c, id, query.VariantID, query.LimitOrDefault(), query.OffsetOrDefault())
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServiceNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Service not found",
				})
			case errors.Is(err, apperrors.ErrVariantNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Variant not found",
				})
			default:
				err = fmt.Errorf("HealthHandler.GetServiceHealthLogs: %w", err)
				h.loggingError(c, err, fmt.Sprintf("failed to get health logs of service %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		res := make([]response.ProbeRecordResponse, 0, len(records))
		for _, record := range records {
			res = append(res, response.NewProbeRecordResponse(record))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *healthHandler) TriggerServiceHealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := h.healthService.TriggerHealthCheck(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServiceNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Service not found",
				})
			case errors.Is(err, apperrors.ErrHealthCheckURLNotConfigured):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Service has no health check URL configured",
				})
			default:
				err = fmt.Errorf("HealthHandler.TriggerServiceHealthCheck: %w", err)
				h.loggingError(c, err, fmt.Sprintf("failed to trigger health check of service %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Health check completed",
		})
	}
}

func (h *healthHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	if requestId := c.GetString(middleware.RequestIDKey); requestId != "" {
		data = append(data, zap.String("request_id", requestId))
	}
	h.logger.Log(logLevel, errDescription, data...)
}

func NewHealthHandler(logger *zap.Logger, healthService service.HealthService) HealthHandler {
	return &healthHandler{
		logger:        logger,
		healthService: healthService,
	}
}
