package handlers

import (
	"net/http"
	"os"
	"time"
)

type HealthHandler struct {
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{StartTime: time.Now()}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// The only dependency is the SeaTable base; a live probe per health poll
	// would burn the upstream quota, so this just checks configuration.
	if os.Getenv("SEATABLE_API_TOKEN") != "" && os.Getenv("SEATABLE_URL") != "" {
		deps["seatable"] = "configured"
	} else {
		deps["seatable"] = "not configured"
	}

	status := "healthy"
	if deps["seatable"] == "not configured" {
		status = "degraded"
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}

// HandleIndex serves the service banner.
func (h *HealthHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "Amira Partner Portal API",
		"version": "1.0",
	})
}
