package model

import "time"

// Статусы отправки объявления.
const (
	SubmissionOK     = "ok"
	SubmissionFailed = "failed"
)

// Submission — локальная запись истории отправок (gorm).
type Submission struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Name          string `gorm:"not null"`
	Category      string
	ImageFileName string
	Status        string `gorm:"not null;index"`
	HTTPStatus    int
	Error         string

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
