package mood

import "time"

// DateLayout is the calendar-date key format used everywhere in the system.
// Dates are always UTC calendar dates.
const DateLayout = "2006-01-02"

// DateOf returns the UTC calendar date of t as a date key.
func DateOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Entry is one mood record. (user_id, date) is the natural key: at most one
// entry per user per calendar day survives a save.
type Entry struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index;not null" json:"user_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 10" json:"mood_rating"`
	Notes     string    `gorm:"type:text;not null;default:''" json:"notes,omitempty"`
	Exercised bool      `gorm:"not null;default:false" json:"exercised"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Entry) TableName() string { return "mood_entries" }
