package models

import "time"

// Theme is the persisted colour scheme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// AppContext is the per-client state the front end used to keep in browser storage.
type AppContext struct {
	ClientID    string    `db:"client_id" json:"client_id"`
	Theme       Theme     `db:"theme" json:"theme"`
	SessionSeen bool      `db:"session_seen" json:"session_seen"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// DefaultAppContext is used when nothing has been stored for a client yet.
func DefaultAppContext(clientID string) AppContext {
	return AppContext{ClientID: clientID, Theme: ThemeDark}
}
