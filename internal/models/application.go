package models

type Application struct {
	BaseModel
	JobID       string `gorm:"type:char(24);not null;uniqueIndex:idx_job_applicant" json:"jobId"`
	ApplicantID string `gorm:"type:char(24);not null;uniqueIndex:idx_job_applicant;index" json:"applicantId"`

	Resume      string            `json:"resume,omitempty"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Notes       string            `json:"notes,omitempty"`

	Job       *Job  `gorm:"foreignKey:JobID" json:"-"`
	Applicant *User `gorm:"foreignKey:ApplicantID" json:"-"`
}
