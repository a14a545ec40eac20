package models

// Contact is the hostel office contact card. The table holds a single row.
type Contact struct {
	ContactID int    `gorm:"primaryKey;column:contact_id" json:"-"`
	Address   string `gorm:"column:address" json:"address"`
	Phone     string `gorm:"column:phone" json:"phone"`
	Fax       string `gorm:"column:fax" json:"fax"`
	Emergency string `gorm:"column:emergency" json:"emergency"`
}

func (Contact) TableName() string {
	return "contact"
}
