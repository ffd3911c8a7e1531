package mood

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidRating = errors.New("mood rating must be between 1 and 10")

// Store persists mood entries scoped by user. Reads degrade to empty results
// on storage errors (logged); writes propagate failures to the caller.
type Store struct {
	DB *gorm.DB
}

type NewEntry struct {
	UserID    string
	Rating    int
	Notes     string
	Exercised bool
	Date      string
}

// EntryPatch carries optional field updates. Nil fields are left untouched.
type EntryPatch struct {
	Rating    *int
	Notes     *string
	Exercised *bool
}

// GetEntries returns every entry owned by userID in creation order.
func (s *Store) GetEntries(ctx context.Context, userID string) []Entry {
	var entries []Entry
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&entries).Error
	if err != nil {
		log.Printf("mood: read entries for user %s: %v", userID, err)
		return []Entry{}
	}
	return entries
}

// SaveEntry validates and stores a new entry, replacing any existing entry for
// the same (user, date) pair. The id carries a time component plus a random
// component (UUIDv7) so collisions are negligible across restarts.
func (s *Store) SaveEntry(ctx context.Context, in NewEntry) (*Entry, error) {
	if in.Rating < 1 || in.Rating > 10 {
		return nil, ErrInvalidRating
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate entry id: %w", err)
	}

	e := Entry{
		ID:        id.String(),
		UserID:    in.UserID,
		Rating:    in.Rating,
		Notes:     in.Notes,
		Exercised: in.Exercised,
		Date:      in.Date,
		CreatedAt: time.Now().UTC(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND date = ?", in.UserID, in.Date).
			Delete(&Entry{}).Error; err != nil {
			return err
		}
		return tx.Create(&e).Error
	})
	if err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}
	return &e, nil
}

// UpdateEntry merges the given fields into the entry with the given id.
// A miss is not an error: it returns (nil, nil) and changes nothing.
// id, user_id, date and created_at are never touched.
func (s *Store) UpdateEntry(ctx context.Context, id string, patch EntryPatch) (*Entry, error) {
	if patch.Rating != nil && (*patch.Rating < 1 || *patch.Rating > 10) {
		return nil, ErrInvalidRating
	}

	var e Entry
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&e).Error; err != nil {
			return err
		}

		updates := map[string]any{}
		if patch.Rating != nil {
			updates["rating"] = *patch.Rating
			e.Rating = *patch.Rating
		}
		if patch.Notes != nil {
			updates["notes"] = *patch.Notes
			e.Notes = *patch.Notes
		}
		if patch.Exercised != nil {
			updates["exercised"] = *patch.Exercised
			e.Exercised = *patch.Exercised
		}
		if len(updates) == 0 {
			return nil
		}

		return tx.Model(&Entry{}).Where("id = ?", id).Updates(updates).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return &e, nil
}

// GetEntry looks up a single entry by id. Returns nil if absent.
func (s *Store) GetEntry(ctx context.Context, id string) *Entry {
	var e Entry
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("mood: read entry %s: %v", id, err)
		}
		return nil
	}
	return &e
}

// GetEntryByDate looks up the user's entry for an exact date. Returns nil if absent.
func (s *Store) GetEntryByDate(ctx context.Context, userID, date string) *Entry {
	var e Entry
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&e).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("mood: read entry for user %s date %s: %v", userID, date, err)
		}
		return nil
	}
	return &e
}

// GetRecentEntries returns up to limit entries for userID, most recent date first.
func (s *Store) GetRecentEntries(ctx context.Context, userID string, limit int) []Entry {
	var entries []Entry
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		log.Printf("mood: read recent entries for user %s: %v", userID, err)
		return []Entry{}
	}
	return entries
}
