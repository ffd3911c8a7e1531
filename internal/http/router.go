package http

import (
	"net/http"
	"time"

	"moodlog/internal/auth"
	"moodlog/internal/config"
	"moodlog/internal/http/handler"
	mw "moodlog/internal/http/middleware"
	"moodlog/internal/mood"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)

	me := &handler.MeHandler{}
	r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

	store := &mood.Store{DB: db}
	entryH := &handler.EntryHandler{Store: store, Now: time.Now}
	entryRead := &handler.EntryReadHandler{Store: store, Now: time.Now}
	analyticsH := &handler.AnalyticsHandler{Store: store, Now: time.Now}

	r.Route("/entries", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Post("/", entryH.Create)
		r.Get("/", entryRead.List)

		r.Get("/recent", entryRead.Recent)
		r.Get("/today", entryRead.Today)
		r.Get("/date/{date}", entryRead.ByDate)

		r.Patch("/{id}", entryH.Update)
	})

	r.Route("/analytics", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/summary", analyticsH.Summary)
		r.Get("/daily", analyticsH.Daily)
		r.Get("/weekly", analyticsH.Weekly)
		r.Get("/distribution", analyticsH.Distribution)
		r.Get("/insights", analyticsH.Insights)
	})

	r.With(auth.RequireAuth(jwtSvc)).Get("/dashboard", analyticsH.Dashboard)

	return r
}
