package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/tabledraw/tabledraw/handlers"
	"github.com/tabledraw/tabledraw/metrics"
	"github.com/tabledraw/tabledraw/middleware"
	"github.com/tabledraw/tabledraw/models"
)

// SetupRoutes собирает всю таблицу маршрутов приложения.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	tournamentHandler *handlers.TournamentHandler,
	competitorHandler *handlers.CompetitorHandler,
	pairingHandler *handlers.PairingHandler,
	matchHandler *handlers.MatchHandler,
	standingsHandler *handlers.StandingsHandler,
	simulationHandler *handlers.SimulationHandler,
	dashboardHandler *handlers.DashboardHandler,
	adminUserHandler *handlers.AdminUserHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(jwtSecret)

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	router.Route("/tournaments", func(r chi.Router) {
		// Публичные маршруты для просмотра турниров
		r.Get("/", tournamentHandler.ListHandler)
		r.Get("/{tournamentID}", tournamentHandler.GetByIDHandler)
		r.Get("/{tournamentID}/competitors", competitorHandler.List)
		r.Get("/{tournamentID}/matches", matchHandler.ListByTournament)
		r.Get("/{tournamentID}/standings", standingsHandler.Get)
		r.Get("/{tournamentID}/standings/export", standingsHandler.ExportCSV)
		// Симуляция ничего не сохраняет, поэтому открыта и зрителям
		r.Post("/{tournamentID}/simulations", simulationHandler.Simulate)

		// Защищённые маршруты для директоров
		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Post("/", tournamentHandler.CreateHandler)
			r.Put("/{tournamentID}", tournamentHandler.UpdateDetailsHandler)
			r.Patch("/{tournamentID}/status", tournamentHandler.UpdateStatusHandler)
			r.Delete("/{tournamentID}", tournamentHandler.DeleteHandler)
			r.Post("/{tournamentID}/logo", tournamentHandler.UploadLogoHandler)
			r.Post("/{tournamentID}/competitors", competitorHandler.Add)
			r.Post("/{tournamentID}/rounds", pairingHandler.GenerateRound)
			r.Delete("/{tournamentID}/rounds/current", pairingHandler.VoidRound)
		})
	})

	router.Route("/competitors", func(r chi.Router) {
		r.Use(authenticate)

		r.Patch("/{competitorID}", competitorHandler.Update)
		r.Patch("/{competitorID}/withdrawn", competitorHandler.SetWithdrawn)
		r.Delete("/{competitorID}", competitorHandler.Remove)
	})

	router.Route("/matches", func(r chi.Router) {
		r.Use(authenticate)

		r.Patch("/{matchID}/score", matchHandler.RecordScore)
	})

	router.Route("/users", func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/{id}", userHandler.GetUserByID)
		r.Put("/{id}", userHandler.UpdateUserByID)
		r.Patch("/{id}/password", userHandler.ChangePassword)
	})

	router.Route("/admin", func(r chi.Router) {
		r.Use(authenticate)
		r.Use(middleware.Authorize(models.RoleAdmin))

		r.Get("/users", adminUserHandler.ListUsers)
		r.Delete("/users/{id}", adminUserHandler.DeleteUser)
		r.Get("/dashboard", dashboardHandler.Stats)
	})

	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	router.Handle("/metrics", metrics.Handler())
}
