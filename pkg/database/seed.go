package database

import (
	"log"
	"time"

	"ai-helper-be/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	demoEmail    = "demo@aihelper.dev"
	demoPassword = "demo1234"
)

// SeedDemoUser provisions the built-in demo account with a pro plan, an
// active subscription and a widened usage quota. It is idempotent: an
// existing demo user is left untouched.
func SeedDemoUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", demoEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	periodEnd := now.Add(30 * 24 * time.Hour)
	userId := uuid.New()

	return db.Transaction(func(tx *gorm.DB) error {
		user := &model.User{
			Id:                    userId,
			Email:                 demoEmail,
			PasswordHash:          string(hash),
			Name:                  "Demo User",
			SubscriptionPlan:      "pro",
			SubscriptionExpiresAt: &periodEnd,
			Role:                  "user",
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		subscription := &model.Subscription{
			Id:                 uuid.New(),
			UserId:             userId,
			PlanName:           "pro",
			Status:             "active",
			CurrentPeriodStart: now,
			CurrentPeriodEnd:   periodEnd,
			CreatedAt:          now,
		}
		if err := tx.Create(subscription).Error; err != nil {
			return err
		}

		usage := &model.UsageLimit{
			Id:            uuid.New(),
			UserId:        userId,
			PeriodStart:   now,
			PeriodEnd:     periodEnd,
			RequestsUsed:  0,
			RequestsLimit: 1000,
			TokensUsed:    0,
			TokensLimit:   500000,
		}
		if err := tx.Create(usage).Error; err != nil {
			return err
		}

		log.Printf("Seeded demo user %s", demoEmail)
		return nil
	})
}
