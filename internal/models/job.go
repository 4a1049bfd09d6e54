package models

const (
	JobStatusOpen   = "Application Open"
	JobStatusClosed = "Application Closed"
)

// JobModel is a job-portal posting.
type JobModel struct {
	Base
	Title          string             `json:"title"          gorm:"not null"`
	Description    string             `json:"description"    gorm:"type:longtext;not null"`
	Status         string             `json:"status"         gorm:"default:'Application Open'"`
	PostedBy       string             `json:"postedBy"       gorm:"not null"`
	ApplicationURL string             `json:"applicationUrl"`
	Requirements   []RequirementModel `json:"Requirements"   gorm:"foreignKey:JobID"`
}

func (JobModel) TableName() string { return "jobs" }

// RequirementModel is a single requirement line owned by exactly one job.
type RequirementModel struct {
	Base
	JobID       string `json:"jobId"       gorm:"index;not null"`
	Requirement string `json:"requirement" gorm:"not null"`
}

func (RequirementModel) TableName() string { return "requirements" }
