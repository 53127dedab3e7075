package model

import "time"

// ContactMessage is a message left through the public contact form.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name" gorm:"size:255;not null"`
	Company   *string   `json:"company,omitempty" gorm:"size:255"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Phone     *string   `json:"phone,omitempty" gorm:"size:50"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName pins the table name used by the hosted store.
func (ContactMessage) TableName() string { return "contact_us" }
