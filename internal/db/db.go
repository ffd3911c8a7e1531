package db

import (
	"fmt"

	"moodlog/internal/auth"
	"moodlog/internal/mood"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&mood.Entry{},
		&auth.User{},
	); err != nil {
		return err
	}

	// Natural key: at most one entry per user per calendar day.
	if err := gdb.Exec(`create unique index if not exists uq_mood_entries_user_date on mood_entries(user_id, date);`).Error; err != nil {
		return err
	}

	// Helpful indexes
	stmts := []string{
		`create index if not exists idx_mood_entries_user_date_desc on mood_entries(user_id, date desc);`,
		`create index if not exists idx_mood_entries_user_created on mood_entries(user_id, created_at asc);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
