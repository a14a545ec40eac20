package models

import "time"

// Observed status values. The set is open: update writes whatever status
// the admin supplies, with no transition checks.
const (
	StatusPending    = "Pending"
	StatusInProgress = "InProgress"
	StatusResolved   = "Resolved"
	StatusRejected   = "Rejected"
)

type Complaint struct {
	ID          string    `gorm:"primaryKey;column:id;size:64" json:"id"`
	SubmittedBy string    `gorm:"column:submitted_by;index" json:"submitted_by"`
	Name        string    `gorm:"column:name" json:"name"`
	MatricNo    string    `gorm:"column:matric_no;index" json:"matric_no"`
	PhoneNumber string    `gorm:"column:phone_number" json:"phone_number"`
	RoomNumber  string    `gorm:"column:room_number" json:"room_number"`
	Category    string    `gorm:"column:category" json:"category"`
	Description string    `gorm:"column:description" json:"description"`
	Priority    string    `gorm:"column:priority" json:"priority"`
	Comment     *string   `gorm:"column:comment" json:"comment"`
	Status      string    `gorm:"column:status" json:"status"`
	CreateAt    time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    time.Time `gorm:"column:update_at" json:"update_at"`
}

func (Complaint) TableName() string {
	return "complaints"
}
