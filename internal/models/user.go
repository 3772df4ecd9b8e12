package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	Name         string   `gorm:"not null" json:"name"`
	ProfileImage string   `json:"profileImage,omitempty"`
	// Resume is the profile-level resume reference; applications fall back
	// to it when submitted without one.
	Resume        string     `json:"resume,omitempty"`
	ResetToken    string     `json:"-"`
	ResetTokenExp *time.Time `json:"-"`

	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"type:char(24);not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
