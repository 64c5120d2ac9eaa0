package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hotelops/hotelops-backend-go/internal/handler/http/middleware"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	approvalHandler ApprovalHandler,
	delegationHandler DelegationHandler,
	workflowHandler WorkflowHandler,
	notificationHandler NotificationHandler,
	env string,
	frontendURL string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hotelops-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/approvals", func(r chi.Router) {
				r.Post("/", approvalHandler.Open)
				r.Get("/inbox", approvalHandler.Inbox)
				r.Get("/{id}", approvalHandler.Get)

				// Approver only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/{id}/decision", approvalHandler.Decide)
					r.Post("/{id}/escalate", approvalHandler.Escalate)
				})
			})

			r.Get("/entities/{entityType}/{entityID}/approvals", approvalHandler.History)
			r.Get("/employees/{id}/chain", approvalHandler.Chain)
			r.Get("/workflow/{entityType}/transitions", workflowHandler.Transitions)

			r.Route("/delegations", func(r chi.Router) {
				r.Use(middleware.RequireApprover)
				r.Post("/", delegationHandler.Create)
				r.Get("/my", delegationHandler.ListMine)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Post("/read", notificationHandler.MarkRead)
			})
		})
	})
	return r
}
