package tribute

import (
	"errors"
	"strings"

	"github.com/codeverse-africa/whingan-core/internal/models"
	"github.com/codeverse-africa/whingan-core/internal/pkg/pagination"
	"github.com/codeverse-africa/whingan-core/internal/pkg/response"
	"gorm.io/gorm"
)

// Service handles guestbook tributes and their like counters.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns a page of tributes, pinned first then newest first.
func (s *Service) List(q pagination.Query) ([]models.TributeModel, response.Pagination, error) {
	tx := s.db.Model(&models.TributeModel{}).
		Order("is_pinned DESC, created_at DESC")

	var items []models.TributeModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

// GetByID fetches a single tribute by id.
func (s *Service) GetByID(id string) (*models.TributeModel, error) {
	var item models.TributeModel
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a public tribute, composing the author from first and
// last name.
func (s *Service) Create(dto *CreateTributeDTO) (*models.TributeModel, error) {
	item := models.TributeModel{
		Content: dto.Content,
		Author:  strings.TrimSpace(dto.FirstName) + " " + strings.TrimSpace(dto.LastName),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// AdminCreate inserts a tribute from the dashboard with full control over
// the stored fields.
func (s *Service) AdminCreate(dto *AdminTributeDTO) (*models.TributeModel, error) {
	item := models.TributeModel{
		Content: dto.Content,
		Author:  dto.Author,
	}
	if dto.IsPinned != nil {
		item.IsPinned = *dto.IsPinned
	}
	if dto.Likes != nil {
		item.Likes = *dto.Likes
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies a partial update to the tribute with the given id.
func (s *Service) Update(id string, dto *UpdateTributeDTO) (*models.TributeModel, error) {
	item, err := s.GetByID(id)
	if err != nil || item == nil {
		return item, err
	}

	updates := map[string]interface{}{}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.Author != nil {
		updates["author"] = *dto.Author
	}
	if dto.IsPinned != nil {
		updates["is_pinned"] = *dto.IsPinned
	}
	if dto.Likes != nil {
		updates["likes"] = *dto.Likes
	}
	if len(updates) == 0 {
		return item, nil
	}

	if err := s.db.Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the tribute with the given id. Reports whether a row
// existed.
func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.TributeModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// TogglePin flips the pinned flag of a tribute.
func (s *Service) TogglePin(id string) (*models.TributeModel, error) {
	item, err := s.GetByID(id)
	if err != nil || item == nil {
		return item, err
	}
	item.IsPinned = !item.IsPinned
	if err := s.db.Model(item).Update("is_pinned", item.IsPinned).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Like records a like from a visitor. Each visitor may like a tribute once;
// the unique index on (tribute_id, visitor_id) backs the check under
// concurrent requests.
func (s *Service) Like(id, visitorID string) (*models.TributeModel, error) {
	item, err := s.GetByID(id)
	if err != nil || item == nil {
		return item, err
	}

	var existing int64
	if err := s.db.Model(&models.TributeLikeModel{}).
		Where("tribute_id = ? AND visitor_id = ?", id, visitorID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, errAlreadyLiked
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.TributeLikeModel{TributeID: id, VisitorID: visitorID}).Error; err != nil {
			return err
		}
		return tx.Model(&models.TributeModel{}).
			Where("id = ?", id).
			Update("likes", gorm.Expr("likes + 1")).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errAlreadyLiked
		}
		return nil, err
	}

	item.Likes++
	return item, nil
}
