package models

import "time"

// UserModel is a job-portal applicant account. Everything past the auth
// fields is an optional profile attribute filled in from the profile form.
type UserModel struct {
	Base
	FirstName string `json:"firstName" gorm:"not null"`
	LastName  string `json:"lastName"  gorm:"not null"`
	Email     string `json:"email"     gorm:"uniqueIndex;not null"`
	Password  string `json:"-"         gorm:"not null"`
	Role      string `json:"role"      gorm:"not null;default:'user'"`

	Phone               string `json:"phone"`
	DateOfBirth         string `json:"dateOfBirth"`
	StateOfOrigin       string `json:"stateOfOrigin"`
	ProfessionalSummary string `json:"professionalSummary" gorm:"type:longtext"`
	PreferredRole       string `json:"preferredRole"`
	YearsOfExperience   int    `json:"yearsOfExperience"`
	EmploymentStatus    string `json:"employmentStatus"`
	CurrentCompany      string `json:"currentCompany"`
	CurrentRole         string `json:"currentRole"`
	NoticePeriod        int    `json:"noticePeriod"`
	ExpectedSalary      int    `json:"expectedSalary"`
	Location            string `json:"location"`
	WillingToRelocate   bool   `json:"willingToRelocate"`
	WorkPreference      string `json:"workPreference"`
	Skills              string `json:"skills"`
	Education           string `json:"education"           gorm:"type:longtext"`
	Certifications      string `json:"certifications"      gorm:"type:longtext"`
	LinkedInProfile     string `json:"linkedInProfile"`
	Address             string `json:"address"`
	LocalGovernment     string `json:"localGovernment"`
	Bio                 string `json:"bio"                 gorm:"type:longtext"`

	AvatarURL string `json:"avatar_url" gorm:"column:avatar_url"`
	CvURL     string `json:"cv_url"     gorm:"column:cv_url"`

	PasswordResetToken           string     `json:"-"`
	PasswordResetTokenExpiration *time.Time `json:"-"`
}

func (UserModel) TableName() string { return "users" }
