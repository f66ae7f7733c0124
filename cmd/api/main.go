package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/K227-arch/home-solutions/api/routes"
	"github.com/K227-arch/home-solutions/internal/config"
	"github.com/K227-arch/home-solutions/internal/handlers"
	"github.com/K227-arch/home-solutions/internal/repositories"
	mongorepo "github.com/K227-arch/home-solutions/internal/repositories/mongodb"
	"github.com/K227-arch/home-solutions/internal/services"
	"github.com/K227-arch/home-solutions/pkg/mongodb"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		// Rate limiting degrades gracefully without Redis; don't refuse to boot.
		slog.Warn("Redis unreachable, rate limiting disabled", "error", err, "addr", cfg.Redis.Addr)
	}

	// Repositories
	var memberRepo repositories.MemberRepository = mongorepo.NewMemberRepository(db)
	var accountRepo repositories.AccountRepository = mongorepo.NewAccountRepository(db)
	var paymentRepo repositories.PaymentRepository = mongorepo.NewPaymentRepository(db)
	var payoutRepo repositories.PayoutRepository = mongorepo.NewPayoutRepository(db)
	var auditRepo repositories.AuditLogRepository = mongorepo.NewAuditLogRepository(db)
	var resetRepo repositories.PasswordResetRepository = mongorepo.NewPasswordResetRepository(db)
	var newsRepo repositories.NewsRepository = mongorepo.NewNewsRepository(db)
	var txRunner repositories.TransactionRunner = mongorepo.NewTxRunner(mongoClient.Raw())

	// Services
	authService := services.NewAuthService(accountRepo, memberRepo, resetRepo, auditRepo, cfg)
	tenureService := services.NewTenureService(memberRepo, accountRepo, paymentRepo, payoutRepo, auditRepo, txRunner, cfg)
	reportService := services.NewReportService(memberRepo, paymentRepo, auditRepo)
	memberService := services.NewMemberService(accountRepo, memberRepo, auditRepo)
	auditService := services.NewAuditService(auditRepo, accountRepo)
	newsService := services.NewNewsService(newsRepo)

	// Handlers
	deps := routes.HandlerDependencies{
		AuthHandler:   handlers.NewAuthHandler(authService),
		UserHandler:   handlers.NewUserHandler(memberService),
		TenureHandler: handlers.NewTenureHandler(tenureService),
		ReportHandler: handlers.NewReportHandler(reportService),
		AuditHandler:  handlers.NewAuditHandler(auditService),
		NewsHandler:   handlers.NewNewsHandler(newsService),
	}

	router := routes.SetupRouter(cfg, rdb, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("Server starting", "port", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	slog.Info("Server exiting")
}
