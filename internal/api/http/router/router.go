package router

import (
	"net/http"

	"github.com/mrkiwinator/mesto-server/internal/api/http/handler"
	"github.com/mrkiwinator/mesto-server/internal/api/http/middleware"
	"github.com/mrkiwinator/mesto-server/internal/logger"
	"github.com/mrkiwinator/mesto-server/internal/model"
	"github.com/mrkiwinator/mesto-server/internal/service"
)

// Router wires services, handlers and middleware into the HTTP handler
// tree.
type Router struct {
	authService    *service.Auth
	userService    *service.User
	cardService    *service.Card
	tokens         model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a Router instance.
func New(
	authService *service.Auth,
	userService *service.User,
	cardService *service.Card,
	tokens model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		userService:    userService,
		cardService:    cardService,
		tokens:         tokens,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the handler tree. Registration, login, logout and the
// liveness probe are open; every other route, including unmatched paths,
// sits behind the session middleware so an unauthenticated request is
// rejected before any handler logic runs.
func (r *Router) Register() http.Handler {
	authHandler := handler.NewAuth(r.authService, r.logger)
	userHandler := handler.NewUser(r.userService, r.contextManager, r.logger)
	cardHandler := handler.NewCard(r.cardService, r.contextManager, r.logger)

	authenticate := middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger)
	logging := middleware.NewLogging(r.logger)

	protected := http.NewServeMux()
	protected.HandleFunc("GET /users", userHandler.List)
	protected.HandleFunc("GET /users/me", userHandler.GetMe)
	protected.HandleFunc("PATCH /users/me", userHandler.UpdateProfile)
	protected.HandleFunc("PATCH /users/me/avatar", userHandler.UpdateAvatar)
	protected.HandleFunc("GET /users/{id}", userHandler.GetByID)
	protected.HandleFunc("POST /cards", cardHandler.Create)
	protected.HandleFunc("GET /cards", cardHandler.List)
	protected.HandleFunc("DELETE /cards/{id}", cardHandler.Delete)
	protected.HandleFunc("PUT /cards/{id}/likes", cardHandler.Like)
	protected.HandleFunc("DELETE /cards/{id}/likes", cardHandler.Dislike)
	protected.HandleFunc("/", handler.NotFound)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("POST /signup", authHandler.SignUp)
	mux.HandleFunc("POST /signin", authHandler.SignIn)
	mux.HandleFunc("POST /signout", authHandler.SignOut)
	mux.HandleFunc("GET /signout", authHandler.SignOut)
	mux.Handle("/", authenticate.Handle(protected))

	return logging.Handle(mux)
}
