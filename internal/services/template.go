package services

import (
	"errors"

	"placement-prep-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TemplateService struct {
	db *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

// TemplateResponse is the wire shape of an interview template: ordered
// question and tip strings, flattened from the child rows.
type TemplateResponse struct {
	ID         string   `json:"id"`
	Role       string   `json:"role"`
	Questions  []string `json:"questions"`
	Tips       []string `json:"tips"`
	Difficulty string   `json:"difficulty"`
	Duration   string   `json:"duration"`
}

func toTemplateResponse(t models.InterviewTemplate) TemplateResponse {
	resp := TemplateResponse{
		ID:         t.ID,
		Role:       t.Role,
		Difficulty: t.Difficulty,
		Duration:   t.Duration,
		Questions:  make([]string, 0, len(t.Questions)),
		Tips:       make([]string, 0, len(t.Tips)),
	}
	for _, q := range t.Questions {
		resp.Questions = append(resp.Questions, q.Text)
	}
	for _, tip := range t.Tips {
		resp.Tips = append(resp.Tips, tip.Text)
	}
	return resp
}

// ListTemplates returns all templates in catalog order.
func (s *TemplateService) ListTemplates() ([]TemplateResponse, error) {
	templates, err := s.loadOrdered("")
	if err != nil {
		return nil, err
	}

	out := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		out[i] = toTemplateResponse(t)
	}
	return out, nil
}

func (s *TemplateService) GetTemplate(id string) (*TemplateResponse, error) {
	templates, err := s.loadOrdered(id)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, errors.New("interview template not found")
	}
	resp := toTemplateResponse(templates[0])
	return &resp, nil
}

func (s *TemplateService) loadOrdered(id string) ([]models.InterviewTemplate, error) {
	q := s.db.Order("order_num ASC, created_at ASC").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Preload("Tips", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		})
	if id != "" {
		q = q.Where("id = ?", id)
	}

	var templates []models.InterviewTemplate
	if err := q.Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// TemplateInput is the admin create/update payload.
type TemplateInput struct {
	Role       string   `json:"role" binding:"required"`
	Questions  []string `json:"questions" binding:"required,min=1"`
	Tips       []string `json:"tips"`
	Difficulty string   `json:"difficulty"`
	Duration   string   `json:"duration"`
}

func (s *TemplateService) CreateTemplate(input TemplateInput) (*TemplateResponse, error) {
	if len(input.Questions) == 0 {
		return nil, errors.New("template must have at least one question")
	}

	var maxOrder int
	s.db.Model(&models.InterviewTemplate{}).Select("COALESCE(MAX(order_num), -1)").Scan(&maxOrder)

	tpl := models.InterviewTemplate{
		ID:         uuid.NewString(),
		Role:       input.Role,
		Difficulty: input.Difficulty,
		Duration:   input.Duration,
		OrderNum:   maxOrder + 1,
	}
	for i, q := range input.Questions {
		tpl.Questions = append(tpl.Questions, models.TemplateQuestion{Text: q, OrderNum: i})
	}
	for i, tip := range input.Tips {
		tpl.Tips = append(tpl.Tips, models.TemplateTip{Text: tip, OrderNum: i})
	}

	if err := s.db.Create(&tpl).Error; err != nil {
		return nil, err
	}
	return s.GetTemplate(tpl.ID)
}

// UpdateTemplate replaces the template's content wholesale. Questions and
// tips are rewritten so ordering always matches the payload.
func (s *TemplateService) UpdateTemplate(id string, input TemplateInput) (*TemplateResponse, error) {
	if len(input.Questions) == 0 {
		return nil, errors.New("template must have at least one question")
	}

	var tpl models.InterviewTemplate
	if err := s.db.First(&tpl, "id = ?", id).Error; err != nil {
		return nil, errors.New("interview template not found")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", id).Delete(&models.TemplateQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("template_id = ?", id).Delete(&models.TemplateTip{}).Error; err != nil {
			return err
		}

		tpl.Role = input.Role
		tpl.Difficulty = input.Difficulty
		tpl.Duration = input.Duration
		if err := tx.Save(&tpl).Error; err != nil {
			return err
		}

		for i, q := range input.Questions {
			if err := tx.Create(&models.TemplateQuestion{TemplateID: id, Text: q, OrderNum: i}).Error; err != nil {
				return err
			}
		}
		for i, tip := range input.Tips {
			if err := tx.Create(&models.TemplateTip{TemplateID: id, Text: tip, OrderNum: i}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetTemplate(id)
}

func (s *TemplateService) DeleteTemplate(id string) error {
	res := s.db.Delete(&models.InterviewTemplate{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("interview template not found")
	}
	s.db.Where("template_id = ?", id).Delete(&models.TemplateQuestion{})
	s.db.Where("template_id = ?", id).Delete(&models.TemplateTip{})
	return nil
}
