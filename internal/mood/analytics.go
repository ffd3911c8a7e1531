package mood

import (
	"math"
	"sort"
	"time"
)

// Analytics over mood entries: pure, stateless transformations of []Entry into
// view models. Empty input always yields a neutral zero result. Functions that
// depend on "today" take the reference time as a parameter so callers can pin
// it in tests; the calendar date is always derived in UTC.
//
// Conventions: weeks start on Sunday; averages and the trend are rounded half
// away from zero to one decimal; distribution percentages to the nearest
// integer.

const labelLayout = "Jan 2"

// streakHorizonDays bounds how far back a streak is counted.
const streakHorizonDays = 30

type DailyPoint struct {
	Date   string `json:"date"`
	Label  string `json:"label"`
	Rating int    `json:"mood"`
}

type WeeklyPoint struct {
	WeekStart string  `json:"week_start"`
	Label     string  `json:"label"`
	Average   float64 `json:"average"`
}

type Stats struct {
	Average      float64 `json:"average"`
	Highest      int     `json:"highest"`
	Lowest       int     `json:"lowest"`
	Trend        float64 `json:"trend"`
	TotalEntries int     `json:"total_entries"`
	StreakDays   int     `json:"streak_days"`
}

type Bucket struct {
	Rating  int `json:"rating"`
	Count   int `json:"count"`
	Percent int `json:"percent"`
}

// DailySeries emits one point per day with an entry within the last windowDays
// calendar days ending today, oldest first. Days without an entry are omitted.
func DailySeries(entries []Entry, now time.Time, windowDays int) []DailyPoint {
	byDate := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e
	}

	today := midnightUTC(now)
	out := make([]DailyPoint, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := day.Format(DateLayout)
		if e, ok := byDate[key]; ok {
			out = append(out, DailyPoint{Date: key, Label: day.Format(labelLayout), Rating: e.Rating})
		}
	}
	return out
}

// WeeklySeries buckets entries by week (Sunday start) and returns the average
// rating per bucket for the 8 most recent buckets, ascending by week start.
func WeeklySeries(entries []Entry) []WeeklyPoint {
	type agg struct {
		total int
		count int
	}
	buckets := map[string]*agg{}

	for _, e := range entries {
		d, err := time.ParseInLocation(DateLayout, e.Date, time.UTC)
		if err != nil {
			continue
		}
		key := weekStartOf(d).Format(DateLayout)
		b := buckets[key]
		if b == nil {
			b = &agg{}
			buckets[key] = b
		}
		b.total += e.Rating
		b.count++
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 8 {
		keys = keys[len(keys)-8:]
	}

	out := make([]WeeklyPoint, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		start, _ := time.ParseInLocation(DateLayout, k, time.UTC)
		out = append(out, WeeklyPoint{
			WeekStart: k,
			Label:     start.Format(labelLayout),
			Average:   round1(float64(b.total) / float64(b.count)),
		})
	}
	return out
}

// SummaryStats computes the dashboard statistics over all entries. Input order
// does not matter; the trend is derived after sorting most-recent-first.
func SummaryStats(entries []Entry, now time.Time) Stats {
	if len(entries) == 0 {
		return Stats{}
	}

	sorted := sortedByDateDesc(entries)

	sum := 0
	highest := sorted[0].Rating
	lowest := sorted[0].Rating
	for _, e := range sorted {
		sum += e.Rating
		if e.Rating > highest {
			highest = e.Rating
		}
		if e.Rating < lowest {
			lowest = e.Rating
		}
	}

	recent := meanRating(sorted[:minInt(7, len(sorted))])
	var previous float64
	if len(sorted) > 7 {
		previous = meanRating(sorted[7:minInt(14, len(sorted))])
	}

	return Stats{
		Average:      round1(float64(sum) / float64(len(sorted))),
		Highest:      highest,
		Lowest:       lowest,
		Trend:        round1(recent - previous),
		TotalEntries: len(sorted),
		StreakDays:   Streak(entries, now),
	}
}

// Streak counts consecutive days with an entry, walking backward from today.
// It returns 0 when today has no entry and never looks back more than 30 days.
func Streak(entries []Entry, now time.Time) int {
	have := make(map[string]bool, len(entries))
	for _, e := range entries {
		have[e.Date] = true
	}

	today := midnightUTC(now)
	streak := 0
	for i := 0; i < streakHorizonDays; i++ {
		if !have[today.AddDate(0, 0, -i).Format(DateLayout)] {
			break
		}
		streak++
	}
	return streak
}

// Distribution returns a histogram bucket per rating that occurs at least
// once, ascending by rating, with the share of all entries as an integer
// percentage.
func Distribution(entries []Entry) []Bucket {
	var counts [11]int
	for _, e := range entries {
		if e.Rating >= 1 && e.Rating <= 10 {
			counts[e.Rating]++
		}
	}

	out := []Bucket{}
	for rating := 1; rating <= 10; rating++ {
		c := counts[rating]
		if c == 0 {
			continue
		}
		out = append(out, Bucket{
			Rating:  rating,
			Count:   c,
			Percent: int(math.Round(float64(c) / float64(len(entries)) * 100)),
		})
	}
	return out
}

// Insight is a coded recommendation derived from the summary statistics.
// Presentation copy lives with the client.
type Insight string

const (
	InsightExcellentAverage Insight = "excellent_average" // average >= 8
	InsightPositiveTrend    Insight = "positive_trend"    // trend > 1
	InsightDecliningTrend   Insight = "declining_trend"   // trend < -1
	InsightConsistentStreak Insight = "consistent_streak" // streak >= 7 days
	InsightLowAverage       Insight = "low_average"       // average < 5
)

// Insights returns the insights that apply to the given entries.
func Insights(entries []Entry, now time.Time) []Insight {
	st := SummaryStats(entries, now)

	out := []Insight{}
	if st.TotalEntries == 0 {
		return out
	}
	if st.Average >= 8 {
		out = append(out, InsightExcellentAverage)
	}
	if st.Trend > 1 {
		out = append(out, InsightPositiveTrend)
	}
	if st.Trend < -1 {
		out = append(out, InsightDecliningTrend)
	}
	if st.StreakDays >= 7 {
		out = append(out, InsightConsistentStreak)
	}
	if st.Average < 5 {
		out = append(out, InsightLowAverage)
	}
	return out
}

// Average returns the mean rating rounded to one decimal, 0 for no entries.
func Average(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	return round1(meanRating(entries))
}

// weekStartOf returns midnight UTC of the Sunday on or before the given time.
func weekStartOf(t time.Time) time.Time {
	d := midnightUTC(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func sortedByDateDesc(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}

func meanRating(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.Rating
	}
	return float64(sum) / float64(len(entries))
}

// round1 rounds half away from zero to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
