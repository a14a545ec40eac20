package models

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	UserID   string    `gorm:"primaryKey;column:user_id;size:64" json:"user_id"`
	Name     string    `gorm:"column:name" json:"name"`
	MatricNo string    `gorm:"column:matric_no;index" json:"matric_no"`
	Email    string    `gorm:"column:email" json:"email"`
	Password string    `gorm:"column:password" json:"-"`
	Role     string    `gorm:"column:role" json:"role"` // student|admin
	CreateAt time.Time `gorm:"column:create_at" json:"create_at"`
}

func (User) TableName() string {
	return "users"
}

// HasCompleteProfile reports whether the display fields copied onto a
// complaint at submission time are present.
func (u *User) HasCompleteProfile() bool {
	return u.Name != "" && u.MatricNo != ""
}
