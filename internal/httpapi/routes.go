package httpapi

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/clocked-app/clocked/internal/repository"
)

// Router assembles the REST surface.
func Router(log *zap.Logger, users repository.UserRepo, h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(RequestLogger(log))

	r.Get("/healthz", h.Healthz)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", h.CreateUser)

		r.Group(func(r chi.Router) {
			r.Use(RequireUser(users))

			r.Post("/clock/in", h.ClockIn)
			r.Post("/clock/out", h.ClockOut)
			r.Get("/clock/current", h.CurrentEntry)
			r.Post("/break/start", h.StartBreak)
			r.Post("/break/end", h.EndBreak)

			r.Get("/entries", h.ListEntries)
			r.Post("/entries", h.CreateEntry)
			r.Get("/entries/{id}", h.GetEntry)
			r.Put("/entries/{id}", h.UpdateEntry)
			r.Delete("/entries/{id}", h.DeleteEntry)

			r.Get("/leave", h.ListLeave)
			r.Post("/leave", h.CreateLeave)
			r.Get("/leave/{id}", h.GetLeave)
			r.Put("/leave/{id}", h.UpdateLeave)
			r.Delete("/leave/{id}", h.DeleteLeave)

			r.Get("/stats", h.Stats)
			r.Get("/weeks", h.WeekList)
			r.Get("/weeks/{token}", h.WeekEntries)

			r.Get("/settings", h.GetSettings)
			r.Put("/settings", h.UpdateSettings)

			r.Get("/holidays/upcoming", h.UpcomingHolidays)
			r.Get("/holidays/previous", h.PreviousHolidays)
			r.Get("/holidays/next", h.NextHoliday)
		})
	})

	return r
}
