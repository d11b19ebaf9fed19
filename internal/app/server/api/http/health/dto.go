package health

import (
	"time"
)

// Health states reported per service and overall.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Input represents the input for health check endpoint
type Input struct{}

// Output represents the output for health check endpoint
type Output struct {
	Body Response
}

// ServiceHealth is the state of one backing service.
type ServiceHealth struct {
	Status    string   `json:"status" example:"healthy"`
	LatencyMS *float64 `json:"latency_ms,omitempty" doc:"Round-trip latency in milliseconds"`
	Message   string   `json:"message,omitempty"`
}

// Response is the aggregated health report.
type Response struct {
	Status    string                   `json:"status" example:"healthy" doc:"Overall health of the service"`
	Timestamp time.Time                `json:"timestamp"`
	Services  map[string]ServiceHealth `json:"services"`
	Version   string                   `json:"version" example:"1.0.0"`
}

type readyOutput struct {
	Body readyResponse
}

type readyResponse struct {
	Ready bool `json:"ready"`
}

type liveOutput struct {
	Body liveResponse
}

type liveResponse struct {
	Alive bool `json:"alive"`
}
