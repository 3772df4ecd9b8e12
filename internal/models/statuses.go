package models

type UserRole string
type JobStatus string
type JobLevel string
type ApplicationStatus string

const (
	UserRoleJobSeeker UserRole = "jobseeker"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"

	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"

	JobLevelBeginner     JobLevel = "Beginner"
	JobLevelIntermediate JobLevel = "Intermediate"
	JobLevelSenior       JobLevel = "Senior"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusHired       ApplicationStatus = "hired"
)

// ValidJobStatus reports whether s is a member of the job status enum.
func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusActive, JobStatusClosed, JobStatusDraft:
		return true
	}
	return false
}

// ValidApplicationStatus reports whether s is a member of the application
// status enum. The status set is deliberately flat: any status may follow
// any other once past pending; the only guard is on withdrawal.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusShortlisted, ApplicationStatusRejected,
		ApplicationStatusHired:
		return true
	}
	return false
}

// ValidJobLevel reports whether l is a member of the job level enum.
func ValidJobLevel(l JobLevel) bool {
	switch l {
	case JobLevelBeginner, JobLevelIntermediate, JobLevelSenior:
		return true
	}
	return false
}
