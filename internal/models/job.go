package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	RecruiterID string    `gorm:"type:char(24);not null;index" json:"recruiterId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Location    string    `gorm:"not null;index" json:"location"`
	Category    string    `gorm:"not null;index" json:"category"`
	Level       JobLevel  `gorm:"type:varchar(20)" json:"level"`
	Salary      float64   `gorm:"not null" json:"salary"`
	Status      JobStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`

	// Ordered string lists, stored as JSONB the same way casting categories
	// were.
	Requirements     datatypes.JSON `gorm:"type:jsonb" json:"-"`
	Responsibilities datatypes.JSON `gorm:"type:jsonb" json:"-"`

	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`

	// ApplicationCount caches the number of live applications referencing
	// this job. Mutated only via atomic increments alongside the
	// application write, and re-derivable with a full recount.
	ApplicationCount int `gorm:"default:0" json:"applicationCount"`

	Recruiter *User `gorm:"foreignKey:RecruiterID" json:"-"`
}
