package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"angertrack/internal/daydetail"
	"angertrack/internal/handlers"
	"angertrack/internal/history"
	"angertrack/internal/service"
	"angertrack/internal/stats"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	DB        handlers.Pinger
	Tracker   service.Tracker
	Engine    *stats.Engine
	Resolver  *daydetail.Resolver
	Navigator *history.Navigator
	Locale    stats.Locale
	Location  *time.Location
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	entryHandler := handlers.NewEntryHandler(deps.Tracker)
	noteHandler := handlers.NewNoteHandler(deps.Tracker)
	toolHandler := handlers.NewToolHandler(deps.Tracker)
	statsHandler := handlers.NewStatsHandler(deps.Engine)
	dayHandler := handlers.NewDayHandler(deps.Resolver)
	dayPageHandler := handlers.NewDayPageHandler(deps.Resolver, deps.Locale, deps.Location)
	historyHandler := handlers.NewHistoryHandler(deps.Navigator)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.DB))

		r.Route("/entries", func(r chi.Router) {
			r.Post("/", entryHandler.Create)
			r.Get("/", entryHandler.List)
			r.Delete("/", entryHandler.DeleteAll)
			r.Delete("/{id}", entryHandler.Delete)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", noteHandler.Create)
			r.Get("/", noteHandler.List)
			r.Delete("/", noteHandler.DeleteAll)
			r.Delete("/{id}", noteHandler.Delete)
		})

		r.Route("/tools", func(r chi.Router) {
			r.Post("/", toolHandler.Create)
			r.Get("/", toolHandler.List)
			r.Delete("/", toolHandler.DeleteAll)
			r.Delete("/{id}", toolHandler.Delete)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/summary", statsHandler.Summary)
			r.Get("/week", statsHandler.Week)
			r.Get("/months", statsHandler.Months)
			r.Get("/semesters", statsHandler.Semesters)
			r.Get("/last30", statsHandler.Last30)
			r.Get("/range", statsHandler.Range)
		})

		r.Method(http.MethodGet, "/days/{date}", dayHandler)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", historyHandler.View)
			r.Post("/open", historyHandler.Open)
			r.Post("/years/{year}", historyHandler.SelectYear)
			r.Post("/months/{month}", historyHandler.SelectMonth)
			r.Post("/days/{day}", historyHandler.SelectDay)
			r.Post("/back", historyHandler.Back)
		})
	})

	r.Method(http.MethodGet, "/days/{date}", dayPageHandler)

	return r
}
