package services

import (
	"errors"
	"math/rand"

	"placement-prep-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

func (s *QuizService) ListQuizzes() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := s.db.Order("created_at ASC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (s *QuizService) GetRandomQuiz() (*models.Quiz, error) {
	quizzes, err := s.ListQuizzes()
	if err != nil {
		return nil, err
	}
	if len(quizzes) == 0 {
		return nil, errors.New("no quizzes found")
	}
	quiz := quizzes[rand.Intn(len(quizzes))]
	return &quiz, nil
}

// SubmitAttempt checks the answer against the stored correct index and
// records the attempt.
func (s *QuizService) SubmitAttempt(quizID string, userAnswer int) (*models.QuizAttempt, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, "id = ?", quizID).Error; err != nil {
		return nil, errors.New("quiz not found")
	}

	if userAnswer < 0 || userAnswer >= len(quiz.Options) {
		return nil, errors.New("answer index out of range")
	}

	attempt := models.QuizAttempt{
		ID:         uuid.NewString(),
		QuizID:     quizID,
		UserAnswer: userAnswer,
		IsCorrect:  userAnswer == quiz.CorrectAnswer,
	}
	if err := s.db.Create(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

// QuizInput is the admin create payload.
type QuizInput struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
}

func (s *QuizService) CreateQuiz(input QuizInput) (*models.Quiz, error) {
	if input.CorrectAnswer < 0 || input.CorrectAnswer >= len(input.Options) {
		return nil, errors.New("correct_answer must index into options")
	}

	quiz := models.Quiz{
		ID:            uuid.NewString(),
		Question:      input.Question,
		Options:       input.Options,
		CorrectAnswer: input.CorrectAnswer,
		Explanation:   input.Explanation,
		Category:      input.Category,
		Difficulty:    input.Difficulty,
	}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) DeleteQuiz(id string) error {
	res := s.db.Delete(&models.Quiz{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("quiz not found")
	}
	return nil
}
