package service

import (
	"fmt"
	"strings"
	"testing"

	"ai-helper-be/internal/config"
	"ai-helper-be/internal/repository/memory"
	"ai-helper-be/internal/repository/unitofwork"
	"ai-helper-be/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testUsageCfg = config.UsageConfig{
	PeriodDays:    30,
	RequestsLimit: 500,
	TokensLimit:   250000,
}

// newTestDB opens a private in-memory database per test so state never
// bleeds between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return unitofwork.NewRepositoryFactory(newTestDB(t))
}

func newTestAuthService(t *testing.T) (IAuthService, *memory.SessionRepository) {
	t.Helper()

	sessions := memory.NewSessionRepository(1)
	mail := newRecordingMailer()
	return NewAuthService(newTestFactory(t), sessions, mail, nil, testUsageCfg), sessions
}

// recordingMailer captures reset emails instead of sending them.
type recordingMailer struct {
	sent []string
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{}
}

func (m *recordingMailer) SendResetToken(email, token string) error {
	m.sent = append(m.sent, email)
	return nil
}
