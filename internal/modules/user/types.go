package user

// ProfileDTO is the public applicant profile payload, upserted by email.
type ProfileDTO struct {
	FirstName           string  `json:"firstName"           binding:"required"`
	LastName            string  `json:"lastName"            binding:"required"`
	Email               string  `json:"email"               binding:"required,email"`
	Phone               *string `json:"phone"`
	DateOfBirth         *string `json:"dateOfBirth"         binding:"omitempty,datetime=2006-01-02"`
	StateOfOrigin       *string `json:"stateOfOrigin"`
	ProfessionalSummary *string `json:"professionalSummary"`
	PreferredRole       *string `json:"preferredRole"`
	YearsOfExperience   *int    `json:"yearsOfExperience"`
	EmploymentStatus    *string `json:"employmentStatus"`
	CurrentCompany      *string `json:"currentCompany"`
	CurrentRole         *string `json:"currentRole"`
	NoticePeriod        *int    `json:"noticePeriod"`
	ExpectedSalary      *int    `json:"expectedSalary"`
	Location            *string `json:"location"`
	WillingToRelocate   *bool   `json:"willingToRelocate"`
	WorkPreference      *string `json:"workPreference"`
	Skills              *string `json:"skills"`
	Education           *string `json:"education"`
	Certifications      *string `json:"certifications"`
	LinkedInProfile     *string `json:"linkedInProfile"`
}

// UpdateFileURLsDTO carries the uploaded file locations onto the user row.
type UpdateFileURLsDTO struct {
	AvatarURL *string `json:"avatar_url"`
	CvURL     *string `json:"cv_url"`
}
