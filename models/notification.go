package models

import "time"

// Notification types, one per workflow event.
const (
	NotificationComplaintSubmit = "ComplaintSubmit"
	NotificationComplaintUpdate = "ComplaintUpdate"
	NotificationFeedbackSubmit  = "FeedbackSubmit"
	NotificationFeedbackReply   = "FeedbackReply"
)

type Notification struct {
	ID       string     `gorm:"primaryKey;column:id;size:64" json:"id"`
	UserID   string     `gorm:"column:user_id;index" json:"user_id"`
	Message  string     `gorm:"column:message" json:"message"`
	Type     string     `gorm:"column:type" json:"type"`
	RefID    string     `gorm:"column:ref_id" json:"ref_id"`
	IsRead   bool       `gorm:"column:is_read" json:"is_read"`
	CreateAt time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
