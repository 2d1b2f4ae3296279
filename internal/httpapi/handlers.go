package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"plivo-mcp/internal/audit"
	"plivo-mcp/internal/auth"
	"plivo-mcp/internal/gateway"
	"plivo-mcp/internal/telemetry"
	"plivo-mcp/pkg/logger"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse input, call the gateway, return JSON.
type Handlers struct {
	Gateway *gateway.Gateway

	// Audit receives side-effecting invocations. Optional.
	Audit *audit.Service
}

func (h Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListTools returns the tool catalog.
func (h Handlers) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": gateway.Catalog()})
}

// InvokeTool runs one tool with the JSON object body as named arguments.
//
// A provider rejection is a normal 200 response whose body holds only "error".
// Faults are logged and answered with a generic 502.
func (h Handlers) InvokeTool(c *gin.Context) {
	if h.Gateway == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "gateway not configured"})
		return
	}
	name := c.Param("name")

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil && !errors.Is(err, io.EOF) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	res, err := h.Gateway.Invoke(c.Request.Context(), name, raw)
	switch {
	case errors.Is(err, gateway.ErrUnknownTool):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown tool"})
		return
	case errors.Is(err, gateway.ErrInvalidArguments):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		logger.FromGin(c).Error("tool fault", "tool", name, "err", err)
		h.recordAudit(c, name, telemetry.OutcomeFault)
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "provider request failed"})
		return
	}

	outcome := telemetry.OutcomeSuccess
	if res.IsError() {
		outcome = telemetry.OutcomeRejected
	}
	h.recordAudit(c, name, outcome)
	c.JSON(http.StatusOK, res)
}

// recordAudit records invocations of tools that can change provider state.
// Failures are logged and never affect the response.
func (h Handlers) recordAudit(c *gin.Context, tool, outcome string) {
	if h.Audit == nil || gateway.IsReadOnly(tool) {
		return
	}
	ctx := c.Request.Context()
	subject, _ := auth.Subject(ctx)
	role, _ := auth.Role(ctx)
	if err := h.Audit.LogToolInvocation(ctx, subject, role, c.ClientIP(), tool, outcome); err != nil {
		logger.FromGin(c).Warn("audit append failed", "tool", tool, "err", err)
	}
}
