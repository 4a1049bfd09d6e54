package journal

import (
	"errors"

	"github.com/codeverse-africa/whingan-core/internal/models"
	"github.com/codeverse-africa/whingan-core/internal/pkg/pagination"
	"github.com/codeverse-africa/whingan-core/internal/pkg/response"
	slugpkg "github.com/codeverse-africa/whingan-core/internal/pkg/slug"
	"gorm.io/gorm"
)

// Service handles journal business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns a page of journal entries, pinned first then newest first,
// optionally restricted to an inclusive date range.
func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.JournalModel, response.Pagination, error) {
	tx := s.db.Model(&models.JournalModel{}).
		Order("is_pinned DESC, date DESC")

	if lq.StartDate != "" && lq.EndDate != "" {
		// ISO dates compare correctly as strings.
		tx = tx.Where("date BETWEEN ? AND ?", lq.StartDate, lq.EndDate)
	}

	var items []models.JournalModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

// GetByID fetches a single entry by id.
func (s *Service) GetByID(id string) (*models.JournalModel, error) {
	var item models.JournalModel
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetBySlug fetches a single entry by slug.
func (s *Service) GetBySlug(slug string) (*models.JournalModel, error) {
	var item models.JournalModel
	if err := s.db.Where("slug = ?", slug).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new entry with a slug derived from the title.
func (s *Service) Create(dto *JournalDTO) (*models.JournalModel, error) {
	uniqueSlug, err := slugpkg.EnsureUnique(s.db, models.JournalModel{}.TableName(), slugpkg.Make(dto.Title), "")
	if err != nil {
		return nil, err
	}

	item := models.JournalModel{
		Title:       dto.Title,
		Slug:        uniqueSlug,
		Description: dto.Description,
		Date:        dto.Date,
		Media:       []string{},
		Tags:        []string{},
	}
	if dto.Media != nil {
		item.Media = *dto.Media
	}
	if dto.Tags != nil {
		item.Tags = *dto.Tags
	}
	if dto.IsPinned != nil {
		item.IsPinned = *dto.IsPinned
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies the payload to the entry with the given id. The slug is
// regenerated from the (possibly changed) title, keeping its own row out of
// the collision check.
func (s *Service) Update(id string, dto *JournalDTO) (*models.JournalModel, error) {
	item, err := s.GetByID(id)
	if err != nil || item == nil {
		return item, err
	}

	uniqueSlug, err := slugpkg.EnsureUnique(s.db, models.JournalModel{}.TableName(), slugpkg.Make(dto.Title), item.ID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":       dto.Title,
		"slug":        uniqueSlug,
		"description": dto.Description,
		"date":        dto.Date,
	}
	if dto.Media != nil {
		updates["media"] = models.StringArray(*dto.Media)
	}
	if dto.Tags != nil {
		updates["tags"] = models.StringArray(*dto.Tags)
	}
	if dto.IsPinned != nil {
		updates["is_pinned"] = *dto.IsPinned
	}

	if err := s.db.Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the entry with the given id. Reports whether a row existed.
func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.JournalModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
