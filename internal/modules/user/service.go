package user

import (
	"errors"

	"github.com/codeverse-africa/whingan-core/internal/models"
	"gorm.io/gorm"
)

// Service handles applicant profiles and their stored file URLs.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GetByID fetches a user by id.
func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// UpdateFileURLs stores uploaded avatar/cv locations on the user row and
// returns the refreshed record.
func (s *Service) UpdateFileURLs(id string, dto *UpdateFileURLsDTO) (*models.UserModel, error) {
	u, err := s.GetByID(id)
	if err != nil || u == nil {
		return u, err
	}

	updates := map[string]interface{}{}
	if dto.AvatarURL != nil {
		updates["avatar_url"] = *dto.AvatarURL
	}
	if dto.CvURL != nil {
		updates["cv_url"] = *dto.CvURL
	}
	if len(updates) > 0 {
		if err := s.db.Model(u).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// SetFileURL stores a single uploaded file location on the user row.
func (s *Service) SetFileURL(id, column, url string) error {
	return s.db.Model(&models.UserModel{}).
		Where("id = ?", id).
		Update(column, url).Error
}

// UpsertProfile updates the profile fields of the user with the given email,
// creating the row when no account exists yet. Auth fields are never touched
// for existing users.
func (s *Service) UpsertProfile(dto *ProfileDTO) (*models.UserModel, error) {
	updates := map[string]interface{}{
		"first_name": dto.FirstName,
		"last_name":  dto.LastName,
	}
	setString := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	setInt := func(col string, v *int) {
		if v != nil {
			updates[col] = *v
		}
	}
	setString("phone", dto.Phone)
	setString("date_of_birth", dto.DateOfBirth)
	setString("state_of_origin", dto.StateOfOrigin)
	setString("professional_summary", dto.ProfessionalSummary)
	setString("preferred_role", dto.PreferredRole)
	setInt("years_of_experience", dto.YearsOfExperience)
	setString("employment_status", dto.EmploymentStatus)
	setString("current_company", dto.CurrentCompany)
	setString("current_role", dto.CurrentRole)
	setInt("notice_period", dto.NoticePeriod)
	setInt("expected_salary", dto.ExpectedSalary)
	setString("location", dto.Location)
	if dto.WillingToRelocate != nil {
		updates["willing_to_relocate"] = *dto.WillingToRelocate
	}
	setString("work_preference", dto.WorkPreference)
	setString("skills", dto.Skills)
	setString("education", dto.Education)
	setString("certifications", dto.Certifications)
	setString("linked_in_profile", dto.LinkedInProfile)

	var u models.UserModel
	err := s.db.Where("email = ?", dto.Email).First(&u).Error
	switch {
	case err == nil:
		if err := s.db.Model(&u).Updates(updates).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		u = models.UserModel{
			FirstName: dto.FirstName,
			LastName:  dto.LastName,
			Email:     dto.Email,
		}
		if err := s.db.Create(&u).Error; err != nil {
			return nil, err
		}
		delete(updates, "first_name")
		delete(updates, "last_name")
		if len(updates) > 0 {
			if err := s.db.Model(&u).Updates(updates).Error; err != nil {
				return nil, err
			}
		}
	default:
		return nil, err
	}

	return s.GetByID(u.ID)
}
