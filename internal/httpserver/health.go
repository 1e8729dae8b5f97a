package httpserver

import (
	"net/http"

	"voice-task-manager/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "voice-task-manager"
)

// healthResp is the body of /health and /ready.
type healthResp struct {
	Status      string         `json:"status"`
	Service     string         `json:"service"`
	Version     string         `json:"version"`
	Environment string         `json:"environment"`
	Timezone    string         `json:"timezone,omitempty"`
	Features    healthFeatures `json:"features"`
}

// healthFeatures tells clients which optional paths are live.
type healthFeatures struct {
	Tasks    bool `json:"tasks"`
	LLM      bool `json:"llm"`
	Calendar bool `json:"calendar"`
}

func (srv HTTPServer) newHealthResp(status string) healthResp {
	return healthResp{
		Status:      status,
		Service:     ServiceName,
		Version:     HealthVersion,
		Environment: srv.environment,
		Timezone:    srv.timezone,
		Features: healthFeatures{
			Tasks:    srv.taskHandler != nil,
			LLM:      srv.llmEnabled,
			Calendar: srv.calendarEnabled,
		},
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Reports the service identity and which optional integrations are enabled
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("healthy"))
}

// readyCheck reports ready only when the task routes are mounted.
// @Summary Readiness Check
// @Description Ready once the task routes are registered
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Task routes not registered"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.taskHandler == nil {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "task routes not registered",
			Data:      srv.newHealthResp("not_ready"),
		})
		return
	}
	response.OK(c, srv.newHealthResp("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive", "service": ServiceName})
}
