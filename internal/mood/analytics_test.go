package mood

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 2025-06-15 is a Sunday, which makes week-boundary expectations easy to read.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func onDay(offset, rating int) Entry {
	return Entry{
		Date:   testNow.AddDate(0, 0, -offset).Format(DateLayout),
		Rating: rating,
	}
}

func TestDateOfUsesUTCCalendarDay(t *testing.T) {
	require.Equal(t, "2025-06-15", DateOf(testNow))

	// 8pm June 14 in UTC-7 is already June 15 in UTC
	pdt := time.FixedZone("PDT", -7*3600)
	require.Equal(t, "2025-06-15", DateOf(time.Date(2025, 6, 14, 20, 0, 0, 0, pdt)))
}

func TestStreakCountsBackFromToday(t *testing.T) {
	// gap at today-3
	entries := []Entry{onDay(0, 7), onDay(1, 6), onDay(2, 8), onDay(4, 5)}
	require.Equal(t, 3, Streak(entries, testNow))
}

func TestStreakZeroWithoutTodayEntry(t *testing.T) {
	entries := []Entry{onDay(1, 7), onDay(2, 6)}
	require.Equal(t, 0, Streak(entries, testNow))
	require.Equal(t, 0, Streak(nil, testNow))
}

func TestStreakBoundedAtThirtyDays(t *testing.T) {
	var entries []Entry
	for i := 0; i < 45; i++ {
		entries = append(entries, onDay(i, 5))
	}
	require.Equal(t, 30, Streak(entries, testNow))
}

func TestSummaryStatsEmpty(t *testing.T) {
	require.Equal(t, Stats{}, SummaryStats(nil, testNow))
}

func TestSummaryStatsTrend(t *testing.T) {
	// 7 most recent average 8.142857..., previous 7 average 5
	var entries []Entry
	recent := []int{9, 8, 8, 8, 8, 8, 8}
	for i, r := range recent {
		entries = append(entries, onDay(i, r))
	}
	for i := 7; i < 14; i++ {
		entries = append(entries, onDay(i, 5))
	}

	st := SummaryStats(entries, testNow)
	require.InDelta(t, 3.1, st.Trend, 1e-9)
	require.Equal(t, 14, st.TotalEntries)
	require.Equal(t, 9, st.Highest)
	require.Equal(t, 5, st.Lowest)
	require.InDelta(t, 6.6, st.Average, 1e-9) // 92/14 = 6.571... -> 6.6
	require.Equal(t, 14, st.StreakDays)
}

func TestSummaryStatsTrendWithoutPreviousWindow(t *testing.T) {
	// fewer than 8 entries: previous side defaults to 0
	entries := []Entry{onDay(0, 6), onDay(1, 8)}
	st := SummaryStats(entries, testNow)
	require.InDelta(t, 7.0, st.Trend, 1e-9)
}

func TestSummaryStatsOrderInsensitive(t *testing.T) {
	ordered := []Entry{onDay(0, 9), onDay(1, 3), onDay(2, 6), onDay(3, 7)}
	shuffled := []Entry{ordered[2], ordered[0], ordered[3], ordered[1]}
	require.Equal(t, SummaryStats(ordered, testNow), SummaryStats(shuffled, testNow))
}

func TestDailySeriesOmitsAbsentDays(t *testing.T) {
	entries := []Entry{onDay(0, 7), onDay(1, 5), onDay(31, 2)}

	series := DailySeries(entries, testNow, 30)
	require.Len(t, series, 2)

	// oldest first, entry outside the window dropped
	require.Equal(t, "2025-06-14", series[0].Date)
	require.Equal(t, 5, series[0].Rating)
	require.Equal(t, "2025-06-15", series[1].Date)
	require.Equal(t, 7, series[1].Rating)
	require.Equal(t, "Jun 15", series[1].Label)
}

func TestDailySeriesEmpty(t *testing.T) {
	require.Empty(t, DailySeries(nil, testNow, 30))
}

func TestWeeklySeriesSundayBucketsAndRounding(t *testing.T) {
	entries := []Entry{
		{Date: "2025-06-09", Rating: 7}, // Mon -> week of Sun 2025-06-08
		{Date: "2025-06-13", Rating: 8}, // Fri -> same week
		{Date: "2025-06-14", Rating: 8}, // Sat -> same week
		{Date: "2025-06-15", Rating: 3}, // Sun -> week of 2025-06-15
	}

	series := WeeklySeries(entries)
	require.Len(t, series, 2)

	require.Equal(t, "2025-06-08", series[0].WeekStart)
	require.InDelta(t, 7.7, series[0].Average, 1e-9) // 23/3 = 7.666... -> 7.7
	require.Equal(t, "Jun 8", series[0].Label)

	require.Equal(t, "2025-06-15", series[1].WeekStart)
	require.InDelta(t, 3.0, series[1].Average, 1e-9)
}

func TestWeeklySeriesKeepsLastEightWeeks(t *testing.T) {
	var entries []Entry
	for w := 0; w < 10; w++ {
		entries = append(entries, onDay(w*7, 5))
	}

	series := WeeklySeries(entries)
	require.Len(t, series, 8)
	// ascending by week start, oldest two buckets dropped
	for i := 1; i < len(series); i++ {
		require.Less(t, series[i-1].WeekStart, series[i].WeekStart)
	}
	require.Equal(t, "2025-06-15", series[len(series)-1].WeekStart)
}

func TestDistribution(t *testing.T) {
	entries := []Entry{onDay(0, 5), onDay(1, 5), onDay(2, 8)}

	buckets := Distribution(entries)
	require.Equal(t, []Bucket{
		{Rating: 5, Count: 2, Percent: 67},
		{Rating: 8, Count: 1, Percent: 33},
	}, buckets)
}

func TestDistributionEmpty(t *testing.T) {
	require.Empty(t, Distribution(nil))
}

func TestAverage(t *testing.T) {
	require.Equal(t, 0.0, Average(nil))
	entries := []Entry{onDay(0, 7), onDay(1, 8), onDay(2, 8)}
	require.InDelta(t, 7.7, Average(entries), 1e-9)
}

func TestInsights(t *testing.T) {
	require.Empty(t, Insights(nil, testNow))

	// 7 consecutive days at rating 8: high average, week-long streak, and a
	// positive trend since there is no previous window to compare against
	var entries []Entry
	for i := 0; i < 7; i++ {
		entries = append(entries, onDay(i, 8))
	}
	got := Insights(entries, testNow)
	require.Contains(t, got, InsightExcellentAverage)
	require.Contains(t, got, InsightConsistentStreak)
	require.Contains(t, got, InsightPositiveTrend)
	require.NotContains(t, got, InsightLowAverage)

	// two low days
	low := []Entry{onDay(1, 2), onDay(3, 3)}
	require.Contains(t, Insights(low, testNow), InsightLowAverage)
}
