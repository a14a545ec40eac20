package models

import "time"

type Faq struct {
	ID       string     `gorm:"primaryKey;column:id;size:64" json:"id"`
	Question string     `gorm:"column:question" json:"question"`
	Answer   string     `gorm:"column:answer" json:"answer"`
	CreateAt time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

func (Faq) TableName() string {
	return "faqs"
}
