package model

import "time"

// Application is a public submission against a job. JobID is not enforced
// as a foreign key: the job may have been deleted since.
type Application struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	JobID             uint      `json:"job_id" gorm:"not null;index"`
	ApplicantName     string    `json:"applicant_name" gorm:"size:255;not null"`
	Email             string    `json:"email" gorm:"size:255;not null"`
	Phone             string    `json:"phone" gorm:"size:50;not null"`
	ResumeURL         *string   `json:"resume_url,omitempty" gorm:"size:1024"`
	ResumeKey         *string   `json:"-" gorm:"size:255;index"`
	ResumeContentType *string   `json:"-" gorm:"size:255"`
	CreatedAt         time.Time `json:"created_at" gorm:"index"`

	// Relations
	Job *Job `json:"job,omitempty" gorm:"foreignKey:JobID"`
}

// TableName pins the table name used by the hosted store.
func (Application) TableName() string { return "applications" }

// JobTitle returns the title of the referenced job, or "" when it was deleted.
func (a Application) JobTitle() string {
	if a.Job == nil {
		return ""
	}
	return a.Job.Title
}

// HasResume reports whether a resume was uploaded with the application.
func (a Application) HasResume() bool {
	return a.ResumeURL != nil && *a.ResumeURL != ""
}
