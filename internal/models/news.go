package models

import "time"

// NewsModel is a published news article. The slug is derived from the title
// at creation time and never regenerated afterwards.
type NewsModel struct {
	Base
	Title           string      `json:"title"            gorm:"not null"`
	Slug            string      `json:"slug"             gorm:"uniqueIndex;not null"`
	Content         string      `json:"content"          gorm:"type:longtext;not null"`
	FullContent     string      `json:"fullContent"      gorm:"type:longtext;not null"`
	Date            time.Time   `json:"date"`
	Image           string      `json:"image"`
	Tags            StringArray `json:"tags"             gorm:"type:json"`
	IsPinned        bool        `json:"isPinned"         gorm:"default:false"`
	Author          string      `json:"author"`
	AuthorPortfolio string      `json:"author_portfolio" gorm:"column:author_portfolio"`
}

func (NewsModel) TableName() string { return "news" }
