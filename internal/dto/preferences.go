package dto

import "github.com/noah-isme/udaan-api/internal/models"

// UpdatePreferencesRequest patches the caller's application context. Absent
// fields are left unchanged.
type UpdatePreferencesRequest struct {
	Theme       *models.Theme `json:"theme,omitempty" validate:"omitempty,oneof=dark light"`
	SessionSeen *bool         `json:"session_seen,omitempty"`
}
