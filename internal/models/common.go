package models

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"time"

	"gorm.io/gorm"
)

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// NewID generates a 24-character hex identifier (12 random bytes).
func NewID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		panic("models: failed to read random bytes: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// IsValidID reports whether s is a well-formed 24-character hex identifier.
// Malformed identifiers must be rejected at the boundary, before any
// repository call.
func IsValidID(s string) bool {
	return idPattern.MatchString(s)
}

type BaseModel struct {
	ID        string    `gorm:"type:char(24);primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}
