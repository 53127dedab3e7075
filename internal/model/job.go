package model

import "time"

// Job is a posting managed by staff.
type Job struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Location    string    `json:"location" gorm:"size:255;not null"`
	JobType     string    `json:"job_type" gorm:"size:100;not null"`
	PostedAt    time.Time `json:"posted_at" gorm:"type:date"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName pins the table name used by the hosted store.
func (Job) TableName() string { return "jobs" }

// JobFields are the staff editable fields of a Job.
type JobFields struct {
	Title       string
	Description string
	Location    string
	JobType     string
}

// JobOption is the minimal projection used by the applications filter.
type JobOption struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}
