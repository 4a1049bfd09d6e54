package job

// JobDTO is the create payload. Requirements travel as plain strings and
// are stored as child rows.
type JobDTO struct {
	Title          string   `json:"title"          binding:"required"`
	Description    string   `json:"description"    binding:"required"`
	Status         string   `json:"status"         binding:"omitempty,oneof='Application Open' 'Application Closed'"`
	PostedBy       string   `json:"postedBy"       binding:"required"`
	ApplicationURL string   `json:"applicationUrl"`
	Requirements   []string `json:"requirements"`
}

// UpdateJobDTO is the partial update payload. A non-nil Requirements slice
// replaces the stored requirement rows wholesale.
type UpdateJobDTO struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Status         *string   `json:"status"         binding:"omitempty,oneof='Application Open' 'Application Closed'"`
	PostedBy       *string   `json:"postedBy"`
	ApplicationURL *string   `json:"applicationUrl"`
	Requirements   *[]string `json:"requirements"`
}
