package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"moodlog/internal/auth"
	"moodlog/internal/mood"

	"github.com/go-chi/chi/v5"
)

// maxNotesLen caps free-text notes at the input layer.
const maxNotesLen = 500

type EntryHandler struct {
	Store *mood.Store
	Now   func() time.Time
}

func (h *EntryHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

type createEntryReq struct {
	Rating    int    `json:"mood_rating"`
	Notes     string `json:"notes"`
	Exercised bool   `json:"exercised"`
	Date      string `json:"date"` // YYYY-MM-DD optional, defaults to today (UTC)
}

func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createEntryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	req.Notes = strings.TrimSpace(req.Notes)
	if len(req.Notes) > maxNotesLen {
		http.Error(w, "notes too long", http.StatusBadRequest)
		return
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = mood.DateOf(h.now())
	} else if _, err := time.ParseInLocation(mood.DateLayout, date, time.UTC); err != nil {
		http.Error(w, "invalid date (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	e, err := h.Store.SaveEntry(r.Context(), mood.NewEntry{
		UserID:    uid,
		Rating:    req.Rating,
		Notes:     req.Notes,
		Exercised: req.Exercised,
		Date:      date,
	})
	if err != nil {
		if errors.Is(err, mood.ErrInvalidRating) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(e)
}

type patchEntryReq struct {
	Rating    *int    `json:"mood_rating"`
	Notes     *string `json:"notes"`
	Exercised *bool   `json:"exercised"`
}

func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id := chi.URLParam(r, "id")

	var req patchEntryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Notes != nil {
		trimmed := strings.TrimSpace(*req.Notes)
		if len(trimmed) > maxNotesLen {
			http.Error(w, "notes too long", http.StatusBadRequest)
			return
		}
		req.Notes = &trimmed
	}

	// verify ownership before touching anything
	existing := h.Store.GetEntry(r.Context(), id)
	if existing == nil || existing.UserID != uid {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	e, err := h.Store.UpdateEntry(r.Context(), id, mood.EntryPatch{
		Rating:    req.Rating,
		Notes:     req.Notes,
		Exercised: req.Exercised,
	})
	if err != nil {
		if errors.Is(err, mood.ErrInvalidRating) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if e == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}
