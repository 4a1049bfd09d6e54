package tribute

import "errors"

// CreateTributeDTO is the public guestbook submission.
type CreateTributeDTO struct {
	Content   string `json:"content"   binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"  binding:"required"`
}

// AdminTributeDTO is the admin create payload; the author arrives already
// composed.
type AdminTributeDTO struct {
	Content  string `json:"content" binding:"required"`
	Author   string `json:"author"  binding:"required"`
	IsPinned *bool  `json:"isPinned"`
	Likes    *int   `json:"likes"`
}

// UpdateTributeDTO is the admin partial update payload.
type UpdateTributeDTO struct {
	Content  *string `json:"content"`
	Author   *string `json:"author"`
	IsPinned *bool   `json:"isPinned"`
	Likes    *int    `json:"likes"`
}

var errAlreadyLiked = errors.New("tribute already liked by this visitor")
