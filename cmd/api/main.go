package main

import (
	"fmt"
	"net/http"

	"github.com/hotelops/hotelops-backend-go/internal/config"
	appHTTP "github.com/hotelops/hotelops-backend-go/internal/handler/http"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/clock"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/cron"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/database"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/jwt"
	"github.com/hotelops/hotelops-backend-go/internal/repository/postgresql"
	approvalService "github.com/hotelops/hotelops-backend-go/internal/service/approval"
	delegationService "github.com/hotelops/hotelops-backend-go/internal/service/delegation"
	notificationService "github.com/hotelops/hotelops-backend-go/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	delegationRepo := postgresql.NewDelegationRepository(db)
	approvalRepo := postgresql.NewApprovalRequestRepository(db)
	entityStatusRepo := postgresql.NewEntityStatusRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	txManager := postgresql.NewTxManager(db)

	clk := clock.System()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	resolver := approvalService.NewResolver(employeeRepo, delegationRepo, clk)
	chainBuilder := approvalService.NewChainBuilder(employeeRepo)
	approvalSvc := approvalService.NewService(txManager, approvalRepo, entityStatusRepo, resolver, chainBuilder, clk)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	delegationSvc := delegationService.NewDelegationService(delegationRepo, employeeRepo)

	approvalHandler := appHTTP.NewApprovalHandler(approvalSvc, notificationSvc)
	delegationHandler := appHTTP.NewDelegationHandler(delegationSvc)
	workflowHandler := appHTTP.NewWorkflowHandler()
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	scheduler := cron.NewScheduler()
	escalationJobs := cron.NewEscalationJobs(
		approvalRepo,
		approvalSvc,
		notificationSvc,
		clk,
		cfg.Escalation.PendingTimeout,
		cfg.Escalation.SweepInterval,
	)
	escalationJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		approvalHandler,
		delegationHandler,
		workflowHandler,
		notificationHandler,
		cfg.App.Env,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
