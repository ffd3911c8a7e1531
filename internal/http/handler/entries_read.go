package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"moodlog/internal/auth"
	"moodlog/internal/mood"

	"github.com/go-chi/chi/v5"
)

type EntryReadHandler struct {
	Store *mood.Store
	Now   func() time.Time
}

func (h *EntryReadHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// List returns the user's history, most recent date first. Default 100 rows.
func (h *EntryReadHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	limit := limitParam(r, 100, 366)
	entries := h.Store.GetRecentEntries(r.Context(), uid, limit)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}

// Recent returns the user's last few entries for the dashboard. Default 7.
func (h *EntryReadHandler) Recent(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	limit := limitParam(r, 7, 100)
	entries := h.Store.GetRecentEntries(r.Context(), uid, limit)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}

func (h *EntryReadHandler) Today(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	e := h.Store.GetEntryByDate(r.Context(), uid, mood.DateOf(h.now()))
	if e == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

func (h *EntryReadHandler) ByDate(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	date := chi.URLParam(r, "date")
	if _, err := time.ParseInLocation(mood.DateLayout, date, time.UTC); err != nil {
		http.Error(w, "invalid date (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	e := h.Store.GetEntryByDate(r.Context(), uid, date)
	if e == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

func limitParam(r *http.Request, def, max int) int {
	v := strings.TrimSpace(r.URL.Query().Get("limit"))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || n > max {
		return def
	}
	return n
}
