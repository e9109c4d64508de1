package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learntrack/internal/config"
	"learntrack/internal/db"
	"learntrack/internal/model"
	"learntrack/internal/repository"
)

const (
	demoUsername = "demo"
	demoEmail    = "demo@example.com"
	demoPassword = "demo123456"
)

type seedLesson struct {
	lessonID    string
	completed   bool
	currentStep int
}

type seedAchievement struct {
	name string
	icon string
}

var (
	seedLessons = []seedLesson{
		{lessonID: "intro-to-computers", completed: true, currentStep: 8},
		{lessonID: "email-basics", completed: true, currentStep: 6},
		{lessonID: "internet-safety", completed: false, currentStep: 3},
	}
	seedAchievements = []seedAchievement{
		{name: "first-lesson", icon: "🎓"},
		{name: "quick-learner", icon: "⚡"},
	}
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.UserStats{},
		&model.LessonProgress{},
		&model.Achievement{},
		&model.TestResult{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	progressRepo := repository.NewProgressRepository(gormDB)
	achievementRepo := repository.NewAchievementRepository(gormDB)
	testResultRepo := repository.NewTestResultRepository(gormDB)
	ctx := context.Background()

	user, created, err := ensureDemoUser(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}
	if created {
		log.Printf("Created demo user %q (password %q)", demoUsername, demoPassword)
	} else {
		log.Printf("Demo user %q already exists, refreshing sample data", demoUsername)
	}

	for _, l := range seedLessons {
		progress := &model.LessonProgress{
			UserID:      user.ID,
			LessonID:    l.lessonID,
			Completed:   l.completed,
			CurrentStep: l.currentStep,
		}
		if err := progressRepo.Upsert(ctx, progress); err != nil {
			log.Fatalf("Failed to seed progress for %s: %v", l.lessonID, err)
		}
	}
	log.Printf("Seeded %d lesson progress records", len(seedLessons))

	granted := 0
	for _, a := range seedAchievements {
		inserted, err := achievementRepo.Insert(ctx, &model.Achievement{
			UserID:          user.ID,
			AchievementName: a.name,
			AchievementIcon: a.icon,
		})
		if err != nil {
			log.Fatalf("Failed to seed achievement %s: %v", a.name, err)
		}
		if inserted {
			granted++
		}
	}
	log.Printf("Seeded achievements: %d new, %d already earned", granted, len(seedAchievements)-granted)

	// Test results are append-only, so only seed them on first run to keep
	// repeated invocations idempotent.
	if created {
		result := &model.TestResult{
			UserID:         user.ID,
			TestID:         "computer-basics-quiz",
			Score:          9,
			TotalQuestions: 10,
			Percentage:     90,
			Passed:         true,
		}
		if err := testResultRepo.Create(ctx, result); err != nil {
			log.Fatalf("Failed to seed test result: %v", err)
		}
		log.Println("Seeded 1 test result")
	}

	log.Println("Seed completed successfully!")
}

// ensureDemoUser creates the demo account with its stats row unless it
// already exists.
func ensureDemoUser(ctx context.Context, repo repository.UserRepository) (*model.User, bool, error) {
	existing, err := repo.FindByLogin(ctx, demoUsername)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	user := &model.User{
		Username:     demoUsername,
		Email:        demoEmail,
		PasswordHash: string(hash),
	}
	if err := repo.CreateWithStats(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}
