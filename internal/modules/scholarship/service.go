package scholarship

import (
	"errors"

	"github.com/codeverse-africa/whingan-core/internal/models"
	"github.com/codeverse-africa/whingan-core/internal/pkg/mail"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles scholarship quiz applications.
type Service struct {
	db     *gorm.DB
	mailer *mail.Sender
	logger *zap.Logger
}

func NewService(db *gorm.DB, mailer *mail.Sender, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, mailer: mailer, logger: logger}
}

// Apply persists a new application and sends the confirmation email. One
// application per email; the unique index backs the pre-insert check.
func (s *Service) Apply(dto *ApplicationDTO) (*models.ScholarshipApplicationModel, error) {
	var count int64
	if err := s.db.Model(&models.ScholarshipApplicationModel{}).
		Where("email = ?", dto.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errDuplicateApplication
	}

	app := models.ScholarshipApplicationModel{
		FirstName:        dto.FirstName,
		LastName:         dto.LastName,
		Email:            dto.Email,
		DateOfBirth:      dto.DateOfBirth,
		Occupation:       dto.Occupation,
		LocalGovernment:  dto.LocalGovernment,
		PreferredProgram: dto.PreferredProgram,
		HasLaptop:        dto.HasLaptop,
		Score:            dto.Score,
		QuizAnswers:      dto.QuizAnswers,
	}
	if app.QuizAnswers == nil {
		app.QuizAnswers = []interface{}{}
	}

	if err := s.db.Create(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errDuplicateApplication
		}
		return nil, err
	}

	if s.mailer != nil {
		err := s.mailer.SendApplicationConfirm(app.Email, app.FirstName+" "+app.LastName, mail.ApplicationConfirmData{
			Name:  app.FirstName + " " + app.LastName,
			Score: app.Score,
		})
		if err != nil {
			s.logger.Error("application confirmation email failed",
				zap.String("email", app.Email), zap.Error(err))
		}
	}

	return &app, nil
}
