package dto

import "time"

// CatalogStatus describes the in-memory scholarship list.
type CatalogStatus struct {
	State          string     `json:"state"`
	Records        int        `json:"records"`
	InvalidRecords int        `json:"invalid_records"`
	Stale          bool       `json:"stale"`
	Source         string     `json:"source,omitempty"`
	LoadedAt       *time.Time `json:"loaded_at,omitempty"`
	LastError      string     `json:"last_error,omitempty"`
	LastErrorCode  string     `json:"last_error_code,omitempty"`
}
