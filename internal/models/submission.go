package models

import "time"

// Submission is one persisted analysis result. Rows are written once and
// never updated.
type Submission struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ResumeName string    `gorm:"size:120;not null" json:"resume_name"`
	JDSnippet  string    `gorm:"type:text" json:"jd_snippet"`
	Score      float64   `gorm:"not null;default:0" json:"score"`
	Feedback   string    `gorm:"type:text" json:"feedback"`
	Timestamp  time.Time `gorm:"not null;index" json:"timestamp"`
}

func (Submission) TableName() string {
	return "submissions"
}
