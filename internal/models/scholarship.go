package models

// ScholarshipApplicationModel is a 1000TTP scholarship quiz submission.
// One application per email, enforced both in the handler and by the
// unique index. The score and answers are client-computed and stored
// verbatim.
type ScholarshipApplicationModel struct {
	Base
	FirstName        string        `json:"firstName"        gorm:"not null"`
	LastName         string        `json:"lastName"         gorm:"not null"`
	Email            string        `json:"email"            gorm:"uniqueIndex;not null"`
	DateOfBirth      string        `json:"dateOfBirth"      gorm:"type:date;not null"`
	Occupation       string        `json:"occupation"       gorm:"not null"`
	LocalGovernment  string        `json:"localGovernment"  gorm:"not null"`
	PreferredProgram string        `json:"preferredProgram" gorm:"not null"`
	HasLaptop        string        `json:"hasLaptop"        gorm:"not null"`
	Score            int           `json:"score"            gorm:"default:0"`
	QuizAnswers      []interface{} `json:"quizAnswers"      gorm:"type:json;serializer:json"`
}

func (ScholarshipApplicationModel) TableName() string { return "scholarship_applications" }
