package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"fitcenter-backend/internal/config"
	"fitcenter-backend/internal/repository/mongodb"
	"fitcenter-backend/internal/repository/sheets"
	"fitcenter-backend/internal/scheduler"
	"fitcenter-backend/internal/server/handlers"
	"fitcenter-backend/internal/server/router"
	authsvc "fitcenter-backend/internal/service/auth"
	billingsvc "fitcenter-backend/internal/service/billing"
	exportingsvc "fitcenter-backend/internal/service/exporting"
	liabilitysvc "fitcenter-backend/internal/service/liabilities"
	"fitcenter-backend/pkg/logger"
	"fitcenter-backend/pkg/token"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	db, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb", zap.Error(err))
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	if err := db.EnsureIndexes(context.Background()); err != nil {
		baseLogger.Fatal("failed to ensure indexes", zap.Error(err))
	}

	exportSink, err := sheets.NewGoogleSheetSink(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
	if err != nil {
		baseLogger.Fatal("failed to init sheets export sink", zap.Error(err))
	}

	assetRepo := mongodb.NewAssetRepo(db)
	cashLogRepo := mongodb.NewCashLogRepo(db)
	paymentRepo := mongodb.NewPaymentRepo(db)
	payrollRepo := mongodb.NewPayrollRepo(db)
	staffRepo := mongodb.NewStaffRepo(db)
	signInRepo := mongodb.NewSignInRepo(db)
	coachRepo := mongodb.NewCoachRepo(db)
	userRepo := mongodb.NewUserRepo(db)
	bioDataRepo := mongodb.NewBioDataRepo(db)
	trainingRepo := mongodb.NewTrainingRepo(db)
	feedbackRepo := mongodb.NewFeedbackRepo(db)

	tokens := token.NewManager(cfg.Auth.JWTSecret)

	authSvc := authsvc.NewService(coachRepo, userRepo, staffRepo, signInRepo, tokens, baseLogger.Named("svc.auth"))
	billingSvc := billingsvc.NewService(paymentRepo, baseLogger.Named("svc.billing"))
	liabilitySvc := liabilitysvc.NewService(payrollRepo)
	exportSvc := exportingsvc.NewService(feedbackRepo, exportSink, baseLogger.Named("svc.exporting"))

	engine := router.New(router.Handlers{
		Assets:      handlers.NewAssetHandler(assetRepo, baseLogger.Named("handlers.assets")),
		CashLog:     handlers.NewCashLogHandler(cashLogRepo, baseLogger.Named("handlers.cashlog")),
		Payments:    handlers.NewPaymentHandler(billingSvc, baseLogger.Named("handlers.payments")),
		Payrolls:    handlers.NewPayrollHandler(payrollRepo, baseLogger.Named("handlers.payrolls")),
		Liabilities: handlers.NewLiabilityHandler(liabilitySvc, baseLogger.Named("handlers.liabilities")),
		Staff:       handlers.NewStaffHandler(staffRepo, authSvc, baseLogger.Named("handlers.staff")),
		Coaches:     handlers.NewCoachHandler(coachRepo, authSvc, baseLogger.Named("handlers.coaches")),
		Users:       handlers.NewUserHandler(userRepo, authSvc, baseLogger.Named("handlers.users")),
		BioData:     handlers.NewBioDataHandler(bioDataRepo, baseLogger.Named("handlers.biodata")),
		Training:    handlers.NewTrainingHandler(trainingRepo, baseLogger.Named("handlers.training")),
		Feedback:    handlers.NewFeedbackHandler(feedbackRepo, exportSvc, baseLogger.Named("handlers.feedback")),
	}, tokens, cfg.Payments.AuthBypass, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Sweep, payrollRepo, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
