package database

import (
	"log"

	"placement-prep-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seed loads sample content on first boot. Each collection is seeded only
// when empty so operator-managed rows survive restarts.
func Seed(db *gorm.DB) {
	seedQuizzes(db)
	seedRoadmaps(db)
	seedInterviewTemplates(db)
}

func seedQuizzes(db *gorm.DB) {
	var count int64
	db.Model(&models.Quiz{}).Count(&count)
	if count > 0 {
		return
	}

	quizzes := []models.Quiz{
		{
			Question:      "What is the time complexity of binary search?",
			Options:       []string{"O(n)", "O(log n)", "O(n log n)", "O(n²)"},
			CorrectAnswer: 1,
			Explanation:   "Binary search has O(log n) time complexity as it divides the search space in half at each step.",
			Category:      "Algorithms",
			Difficulty:    "Medium",
		},
		{
			Question:      "Which data structure follows LIFO principle?",
			Options:       []string{"Queue", "Stack", "Array", "Linked List"},
			CorrectAnswer: 1,
			Explanation:   "Stack follows Last In First Out (LIFO) principle where the last element added is the first to be removed.",
			Category:      "Data Structures",
			Difficulty:    "Easy",
		},
		{
			Question:      "What is the purpose of a primary key in a database?",
			Options:       []string{"To sort data", "To uniquely identify records", "To create indexes", "To encrypt data"},
			CorrectAnswer: 1,
			Explanation:   "A primary key uniquely identifies each record in a database table and cannot have null values.",
			Category:      "Database",
			Difficulty:    "Easy",
		},
		{
			Question:      "Which sorting algorithm has the best average time complexity?",
			Options:       []string{"Bubble Sort", "Selection Sort", "Merge Sort", "Insertion Sort"},
			CorrectAnswer: 2,
			Explanation:   "Merge Sort has O(n log n) average time complexity, which is optimal for comparison-based sorting.",
			Category:      "Algorithms",
			Difficulty:    "Medium",
		},
		{
			Question:      "What is polymorphism in OOP?",
			Options:       []string{"Having multiple constructors", "Method overloading", "Ability to take multiple forms", "Inheritance"},
			CorrectAnswer: 2,
			Explanation:   "Polymorphism allows objects of different types to be treated as objects of a common base type.",
			Category:      "OOP",
			Difficulty:    "Medium",
		},
	}

	for i := range quizzes {
		quizzes[i].ID = uuid.NewString()
		if err := db.Create(&quizzes[i]).Error; err != nil {
			log.Printf("seed: quiz insert failed: %v", err)
		}
	}
	log.Printf("seed: %d quizzes loaded", len(quizzes))
}

func seedRoadmaps(db *gorm.DB) {
	var count int64
	db.Model(&models.CareerRoadmap{}).Count(&count)
	if count > 0 {
		return
	}

	roadmaps := []models.CareerRoadmap{
		{
			Role:        "Frontend Developer",
			Description: "Build user interfaces and experiences for web applications",
			RoadmapURL:  "https://roadmap.sh/frontend",
			Skills:      []string{"HTML", "CSS", "JavaScript", "React", "Vue.js", "Angular"},
			Timeline:    "6-12 months",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Role:        "Backend Developer",
			Description: "Develop server-side logic and infrastructure",
			RoadmapURL:  "https://roadmap.sh/backend",
			Skills:      []string{"Python", "Node.js", "Databases", "APIs", "Cloud Services"},
			Timeline:    "8-14 months",
			Difficulty:  models.DifficultyIntermediate,
		},
		{
			Role:        "Full Stack Developer",
			Description: "Work on both frontend and backend development",
			RoadmapURL:  "https://roadmap.sh/full-stack",
			Skills:      []string{"Frontend", "Backend", "Database", "DevOps", "Testing"},
			Timeline:    "12-18 months",
			Difficulty:  models.DifficultyAdvanced,
		},
		{
			Role:        "DevOps Engineer",
			Description: "Manage development and deployment processes",
			RoadmapURL:  "https://roadmap.sh/devops",
			Skills:      []string{"Docker", "Kubernetes", "CI/CD", "AWS", "Monitoring"},
			Timeline:    "10-16 months",
			Difficulty:  models.DifficultyAdvanced,
		},
		{
			Role:        "Data Scientist",
			Description: "Extract insights from data using statistical methods",
			RoadmapURL:  "https://roadmap.sh/ai-data-scientist",
			Skills:      []string{"Python", "Statistics", "Machine Learning", "SQL", "Visualization"},
			Timeline:    "12-24 months",
			Difficulty:  models.DifficultyAdvanced,
		},
		{
			Role:        "Mobile Developer",
			Description: "Create mobile applications for iOS and Android",
			RoadmapURL:  "https://roadmap.sh/android",
			Skills:      []string{"React Native", "Flutter", "Swift", "Kotlin", "Mobile UX"},
			Timeline:    "8-14 months",
			Difficulty:  models.DifficultyIntermediate,
		},
	}

	for i := range roadmaps {
		roadmaps[i].ID = uuid.NewString()
		if err := db.Create(&roadmaps[i]).Error; err != nil {
			log.Printf("seed: roadmap insert failed: %v", err)
		}
	}
	log.Printf("seed: %d roadmaps loaded", len(roadmaps))
}

type seedTemplate struct {
	role       string
	difficulty string
	duration   string
	questions  []string
	tips       []string
}

func seedInterviewTemplates(db *gorm.DB) {
	var count int64
	db.Model(&models.InterviewTemplate{}).Count(&count)
	if count > 0 {
		return
	}

	templates := []seedTemplate{
		{
			role:       "Software Engineer",
			difficulty: models.DifficultyIntermediate,
			duration:   "30-45 minutes",
			questions: []string{
				"Tell me about yourself and your journey into software engineering.",
				"Describe a challenging technical problem you solved recently. What made it hard?",
				"How do you approach debugging an issue you have never seen before?",
				"Explain a project where you had to learn a new technology quickly.",
				"Where do you see yourself growing as an engineer over the next two years?",
			},
			tips: []string{
				"Structure answers with situation, action and result.",
				"Quantify impact wherever you can.",
				"It is fine to pause and think before answering.",
			},
		},
		{
			role:       "Frontend Developer",
			difficulty: models.DifficultyEasy,
			duration:   "25-35 minutes",
			questions: []string{
				"What draws you to frontend development?",
				"Walk me through how you would make a slow page feel faster.",
				"Tell me about a time you had to push back on a design for technical reasons.",
				"How do you keep accessibility in mind while building interfaces?",
			},
			tips: []string{
				"Mention concrete tools and metrics, not just frameworks.",
				"Interviewers care about user empathy as much as code.",
			},
		},
		{
			role:       "Data Scientist",
			difficulty: models.DifficultyAdvanced,
			duration:   "40-55 minutes",
			questions: []string{
				"Describe an end-to-end data project you owned. What was the business outcome?",
				"How do you decide whether a model is good enough to ship?",
				"Tell me about a time your analysis contradicted a stakeholder's expectation.",
				"How would you explain overfitting to a non-technical manager?",
				"What do you do when the data you need does not exist?",
			},
			tips: []string{
				"Lead with the business problem before the modeling details.",
				"Be honest about trade-offs and failed experiments.",
				"Practice explaining one technical concept in plain language.",
			},
		},
		{
			role:       "Behavioral (All Roles)",
			difficulty: models.DifficultyEasy,
			duration:   "20-30 minutes",
			questions: []string{
				"Tell me about a time you disagreed with a teammate. How was it resolved?",
				"Describe a situation where you missed a deadline. What did you learn?",
				"Give an example of feedback you received that changed how you work.",
			},
			tips: []string{
				"Pick stories from the last year or two.",
				"End each story with what you took away from it.",
			},
		},
	}

	for order, t := range templates {
		tpl := models.InterviewTemplate{
			ID:         uuid.NewString(),
			Role:       t.role,
			Difficulty: t.difficulty,
			Duration:   t.duration,
			OrderNum:   order,
		}
		for i, q := range t.questions {
			tpl.Questions = append(tpl.Questions, models.TemplateQuestion{Text: q, OrderNum: i})
		}
		for i, tip := range t.tips {
			tpl.Tips = append(tpl.Tips, models.TemplateTip{Text: tip, OrderNum: i})
		}
		if err := db.Create(&tpl).Error; err != nil {
			log.Printf("seed: interview template insert failed: %v", err)
		}
	}
	log.Printf("seed: %d interview templates loaded", len(templates))
}
