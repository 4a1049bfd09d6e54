package models

// JournalModel is a constituency journal entry. Unlike news, the slug is
// regenerated from the title on every create and update.
type JournalModel struct {
	Base
	Title       string      `json:"title"       gorm:"not null"`
	Slug        string      `json:"slug"        gorm:"uniqueIndex;not null"`
	Description string      `json:"description" gorm:"type:longtext;not null"`
	Date        string      `json:"date"        gorm:"type:date;not null"`
	Media       StringArray `json:"media"       gorm:"type:json"`
	IsPinned    bool        `json:"isPinned"    gorm:"default:false"`
	Tags        StringArray `json:"tags"        gorm:"type:json"`
}

func (JournalModel) TableName() string { return "journals" }
