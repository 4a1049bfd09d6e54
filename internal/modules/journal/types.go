package journal

// JournalDTO is the create/update payload. The slug never travels in the
// payload: it is regenerated from the title on every write.
type JournalDTO struct {
	Title       string    `json:"title"       binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        string    `json:"date"        binding:"required,datetime=2006-01-02"`
	Media       *[]string `json:"media"`
	Tags        *[]string `json:"tags"`
	IsPinned    *bool     `json:"isPinned"`
}

// ListQuery holds the optional date-range filter (inclusive).
type ListQuery struct {
	StartDate string
	EndDate   string
}
