package wire

import (
	"net/http"

	"movie-reviews/internal/adaptor"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/middleware"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App is the assembled HTTP application.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router. counter backs the login
// rate limit and may be nil to disable it.
func Wiring(repo *repository.Repository, counter middleware.Counter, config *utils.Config, logger *zap.Logger) *App {
	tokens := utils.NewTokenIssuer(config.JWT)

	service := usecase.NewService(repo, tokens, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, tokens, counter, config, logger)

	return &App{Router: router}
}

// setupRouter mounts middleware and every /api route.
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *utils.TokenIssuer,
	counter middleware.Counter,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	// the login rate limit keys on RemoteAddr, so forwarded headers are
	// only honoured behind a trusted proxy
	if config.App.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, utils.DetailNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusMethodNotAllowed,
			utils.DetailResponse{Detail: `Method "` + r.Method + `" not allowed.`})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, repo.User, logger))

		wireAuth(r, handler.Auth, counter, config, logger)
		wireUser(r, handler.User, logger)
		wireMovie(r, handler.Movie, logger)
		wireReview(r, handler.Review, logger)
	})

	return r
}
