package models

// AdminModel is a dashboard administrator. Admins live in their own identity
// space and authenticate by username through the same login endpoint.
type AdminModel struct {
	Base
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-"        gorm:"not null"`
}

func (AdminModel) TableName() string { return "admins" }
