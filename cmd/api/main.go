package main

import (
	"fmt"
	"net/http"

	"github.com/stafflyhq/hrops-backend-go/internal/config"
	"github.com/stafflyhq/hrops-backend-go/internal/domain/leave"
	appHTTP "github.com/stafflyhq/hrops-backend-go/internal/handler/http"
	"github.com/stafflyhq/hrops-backend-go/internal/pkg/database"
	"github.com/stafflyhq/hrops-backend-go/internal/pkg/jwt"
	"github.com/stafflyhq/hrops-backend-go/internal/pkg/sse"
	"github.com/stafflyhq/hrops-backend-go/internal/repository/postgresql"
	leaveService "github.com/stafflyhq/hrops-backend-go/internal/service/leave"
	notificationService "github.com/stafflyhq/hrops-backend-go/internal/service/notification"
	requestService "github.com/stafflyhq/hrops-backend-go/internal/service/request"
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
	requestRepo := postgresql.NewRequestRepository(db)
	approvalRepo := postgresql.NewApprovalRecordRepository(db)
	usageRepo := postgresql.NewLeaveUsageRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	hub := sse.NewHub()
	notifier := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	defer notifier.Stop()

	registry := leave.NewDefaultPolicyRegistry()
	seniority := leaveService.NewSeniorityCalculator()
	entitlement := leaveService.NewEntitlementCalculator(registry, usageRepo, seniority)

	guard := requestService.NewDuplicateGuard()
	authorizer := requestService.NewSupervisorAuthorizer(employeeRepo)
	txManager := postgresql.NewTransactionManager(db)
	lifecycle := requestService.NewLifecycleManager(
		requestRepo,
		approvalRepo,
		employeeRepo,
		txManager,
		registry,
		entitlement,
		guard,
		authorizer,
		notifier,
		requestService.ApprovalLevels{
			Leave:         cfg.Approval.LeaveLevels,
			Overtime:      cfg.Approval.OvertimeLevels,
			MissedCheckin: cfg.Approval.MissedCheckinLevels,
		},
	)

	requestHandler := appHTTP.NewRequestHandler(lifecycle)
	leaveHandler := appHTTP.NewLeaveHandler(registry, entitlement, seniority, employeeRepo)
	notificationHandler := appHTTP.NewNotificationHandler(notificationRepo, hub)

	router := appHTTP.NewRouter(
		jwtService,
		requestHandler,
		leaveHandler,
		notificationHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
