package models

import "time"

type StoreHealthStatus string

const (
	StoreHealthUnknown   StoreHealthStatus = "unknown"
	StoreHealthHealthy   StoreHealthStatus = "healthy"
	StoreHealthUnhealthy StoreHealthStatus = "unhealthy"
)

// StoreHealth is the result of the latest document store ping.
type StoreHealth struct {
	Status        StoreHealthStatus `json:"status"`
	LastCheckedAt *time.Time        `json:"lastCheckedAt,omitempty"`
	Latency       string            `json:"latency,omitempty"`
	Error         string            `json:"error,omitempty"`
}
