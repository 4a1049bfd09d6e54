package scholarship

import "errors"

// ApplicationDTO is the scholarship submission payload. The score and
// answer array are computed client side and stored as submitted.
type ApplicationDTO struct {
	FirstName        string        `json:"firstName"        binding:"required"`
	LastName         string        `json:"lastName"         binding:"required"`
	Email            string        `json:"email"            binding:"required,email"`
	DateOfBirth      string        `json:"dateOfBirth"      binding:"required,datetime=2006-01-02"`
	Occupation       string        `json:"occupation"       binding:"required"`
	LocalGovernment  string        `json:"localGovernment"  binding:"required"`
	PreferredProgram string        `json:"preferredProgram" binding:"required"`
	HasLaptop        string        `json:"hasLaptop"        binding:"required"`
	Score            int           `json:"score"`
	QuizAnswers      []interface{} `json:"quizAnswers"`
}

var errDuplicateApplication = errors.New("application already exists for email")
