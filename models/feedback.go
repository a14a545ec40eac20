package models

import "time"

type Feedback struct {
	ID          string    `gorm:"primaryKey;column:id;size:64" json:"id"`
	ComplaintID string    `gorm:"column:complaint_id;index" json:"complaint_id"`
	Rating      int       `gorm:"column:rating" json:"rating"`
	Comments    string    `gorm:"column:comments" json:"comments"`
	SubmittedBy string    `gorm:"column:submitted_by;index" json:"submitted_by"`
	Reply       *string   `gorm:"column:reply" json:"reply"`
	CreateAt    time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    time.Time `gorm:"column:update_at" json:"update_at"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
