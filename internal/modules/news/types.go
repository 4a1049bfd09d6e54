package news

import "time"

// NewsDTO is the create/update payload. Both operations validate the same
// fields, matching the original API.
type NewsDTO struct {
	Title           string     `json:"title"       binding:"required"`
	Content         string     `json:"content"     binding:"required"`
	FullContent     string     `json:"fullContent" binding:"required"`
	Tags            *[]string  `json:"tags"        binding:"required"`
	Image           string     `json:"image"`
	Date            *time.Time `json:"date"`
	IsPinned        *bool      `json:"isPinned"`
	Author          string     `json:"author"`
	AuthorPortfolio string     `json:"author_portfolio"`
}

// ListQuery holds the optional list filters.
type ListQuery struct {
	Tag    string
	Search string
}
