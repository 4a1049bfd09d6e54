package job

import (
	"errors"

	"github.com/codeverse-africa/whingan-core/internal/models"
	"gorm.io/gorm"
)

// Service handles job postings and their requirement lists.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns all jobs with requirements eagerly loaded, newest first.
func (s *Service) List() ([]models.JobModel, error) {
	var items []models.JobModel
	err := s.db.Preload("Requirements").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// GetByID fetches a single job with its requirements.
func (s *Service) GetByID(id string) (*models.JobModel, error) {
	var item models.JobModel
	if err := s.db.Preload("Requirements").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a job together with its requirement rows.
func (s *Service) Create(dto *JobDTO) (*models.JobModel, error) {
	item := models.JobModel{
		Title:          dto.Title,
		Description:    dto.Description,
		Status:         models.JobStatusOpen,
		PostedBy:       dto.PostedBy,
		ApplicationURL: dto.ApplicationURL,
	}
	if dto.Status != "" {
		item.Status = dto.Status
	}
	for _, r := range dto.Requirements {
		item.Requirements = append(item.Requirements, models.RequirementModel{Requirement: r})
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies a partial update. When the payload carries a requirements
// slice the stored rows are replaced wholesale inside one transaction.
func (s *Service) Update(id string, dto *UpdateJobDTO) (*models.JobModel, error) {
	item, err := s.GetByID(id)
	if err != nil || item == nil {
		return item, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
	}
	if dto.PostedBy != nil {
		updates["posted_by"] = *dto.PostedBy
	}
	if dto.ApplicationURL != nil {
		updates["application_url"] = *dto.ApplicationURL
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.JobModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		if dto.Requirements != nil {
			if err := tx.Delete(&models.RequirementModel{}, "job_id = ?", id).Error; err != nil {
				return err
			}
			for _, r := range *dto.Requirements {
				req := models.RequirementModel{JobID: id, Requirement: r}
				if err := tx.Create(&req).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// Delete removes a job and its requirement rows. Reports whether the job
// existed.
func (s *Service) Delete(id string) (bool, error) {
	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.RequirementModel{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.JobModel{}, "id = ?", id)
		affected = res.RowsAffected
		return res.Error
	})
	return affected > 0, err
}
