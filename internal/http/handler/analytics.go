package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"moodlog/internal/auth"
	"moodlog/internal/mood"
)

type AnalyticsHandler struct {
	Store *mood.Store
	Now   func() time.Time
}

func (h *AnalyticsHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	entries := h.Store.GetEntries(r.Context(), uid)
	stats := mood.SummaryStats(entries, h.now())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}

// Daily serves the mood line chart: one point per logged day in the window.
func (h *AnalyticsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	days := 30
	if v := strings.TrimSpace(r.URL.Query().Get("days")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 90 {
			days = n
		}
	}

	entries := h.Store.GetEntries(r.Context(), uid)
	series := mood.DailySeries(entries, h.now(), days)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(series)
}

func (h *AnalyticsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	entries := h.Store.GetEntries(r.Context(), uid)
	series := mood.WeeklySeries(entries)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(series)
}

func (h *AnalyticsHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	entries := h.Store.GetEntries(r.Context(), uid)
	buckets := mood.Distribution(entries)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(buckets)
}

func (h *AnalyticsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	entries := h.Store.GetEntries(r.Context(), uid)
	insights := mood.Insights(entries, h.now())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(insights)
}

type dashboardDTO struct {
	Streak   int          `json:"streak"`
	Average7 float64      `json:"average_7d"`
	Today    *mood.Entry  `json:"today"`
	Recent   []mood.Entry `json:"recent"`
}

// Dashboard composes the landing page data in one call: current streak,
// 7-day average, today's entry (null when not logged yet) and recent entries.
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	now := h.now()

	entries := h.Store.GetEntries(r.Context(), uid)
	recent := h.Store.GetRecentEntries(r.Context(), uid, 7)

	resp := dashboardDTO{
		Streak:   mood.Streak(entries, now),
		Average7: mood.Average(recent),
		Today:    h.Store.GetEntryByDate(r.Context(), uid, mood.DateOf(now)),
		Recent:   recent,
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
