package news

import (
	"errors"
	"time"

	"github.com/codeverse-africa/whingan-core/internal/models"
	"github.com/codeverse-africa/whingan-core/internal/pkg/pagination"
	"github.com/codeverse-africa/whingan-core/internal/pkg/response"
	slugpkg "github.com/codeverse-africa/whingan-core/internal/pkg/slug"
	"gorm.io/gorm"
)

// Service handles news business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns a page of news, pinned first then newest first.
func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.NewsModel, response.Pagination, error) {
	tx := s.db.Model(&models.NewsModel{}).
		Order("is_pinned DESC, date DESC")

	if lq.Tag != "" {
		// Tags are stored as a JSON array; containment reduces to a quoted
		// substring match.
		tx = tx.Where("tags LIKE ?", `%"`+lq.Tag+`"%`)
	}
	if lq.Search != "" {
		pattern := "%" + lq.Search + "%"
		tx = tx.Where("LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)", pattern, pattern)
	}

	var items []models.NewsModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

// GetBySlug fetches a single article by slug.
func (s *Service) GetBySlug(slug string) (*models.NewsModel, error) {
	var item models.NewsModel
	if err := s.db.Where("slug = ?", slug).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new article. The slug is derived from the title and
// disambiguated with a numeric suffix on collision.
func (s *Service) Create(dto *NewsDTO) (*models.NewsModel, error) {
	uniqueSlug, err := slugpkg.EnsureUnique(s.db, models.NewsModel{}.TableName(), slugpkg.Make(dto.Title), "")
	if err != nil {
		return nil, err
	}

	item := models.NewsModel{
		Title:           dto.Title,
		Slug:            uniqueSlug,
		Content:         dto.Content,
		FullContent:     dto.FullContent,
		Image:           dto.Image,
		Tags:            *dto.Tags,
		Author:          dto.Author,
		AuthorPortfolio: dto.AuthorPortfolio,
		Date:            time.Now(),
	}
	if dto.Date != nil {
		item.Date = *dto.Date
	}
	if dto.IsPinned != nil {
		item.IsPinned = *dto.IsPinned
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies the payload to the article with the given slug. The slug
// itself is fixed at creation time and never rewritten.
func (s *Service) Update(slug string, dto *NewsDTO) (*models.NewsModel, error) {
	item, err := s.GetBySlug(slug)
	if err != nil || item == nil {
		return item, err
	}

	updates := map[string]interface{}{
		"title":            dto.Title,
		"content":          dto.Content,
		"full_content":     dto.FullContent,
		"image":            dto.Image,
		"tags":             models.StringArray(*dto.Tags),
		"author":           dto.Author,
		"author_portfolio": dto.AuthorPortfolio,
	}
	if dto.Date != nil {
		updates["date"] = *dto.Date
	}
	if dto.IsPinned != nil {
		updates["is_pinned"] = *dto.IsPinned
	}

	if err := s.db.Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the article with the given slug. Reports whether a row
// existed.
func (s *Service) Delete(slug string) (bool, error) {
	res := s.db.Where("slug = ?", slug).Delete(&models.NewsModel{})
	return res.RowsAffected > 0, res.Error
}
