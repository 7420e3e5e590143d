package dto

import "time"

// ReindexResponse describes the snapshot published by an admin reindex
type ReindexResponse struct {
	Generation string `json:"generation"`
	Count      int    `json:"count"`
	Source     string `json:"source"`
}

// ReloadResponse describes the snapshot published after reloading from storage
type ReloadResponse struct {
	Generation string    `json:"generation"`
	Count      int       `json:"count"`
	CreatedAt  time.Time `json:"created_at"`
}

// HealthResponse is returned by / and /health
type HealthResponse struct {
	Status   string          `json:"status"`
	Message  string          `json:"message"`
	Version  string          `json:"version"`
	Time     string          `json:"time"`
	Services map[string]bool `json:"services"`
}
