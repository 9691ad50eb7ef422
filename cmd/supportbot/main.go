package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/barakahq/supportbot/internal/ai"
	"github.com/barakahq/supportbot/internal/config"
	"github.com/barakahq/supportbot/internal/dataset"
	"github.com/barakahq/supportbot/internal/handler"
	"github.com/barakahq/supportbot/internal/job"
	"github.com/barakahq/supportbot/internal/lang"
	"github.com/barakahq/supportbot/internal/middleware"
	"github.com/barakahq/supportbot/internal/repo"
	"github.com/barakahq/supportbot/internal/routing"
	"github.com/barakahq/supportbot/internal/schedule"
	"github.com/barakahq/supportbot/internal/service"
	"github.com/barakahq/supportbot/internal/session"
	"github.com/barakahq/supportbot/internal/textindex"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "supportbot",
		Short: "baraka support desk backend",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the support desk server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))

			db, err := repo.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			if err := repo.ApplyMigrations(db); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, db)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, db *sqlx.DB) error {
	ctx := context.Background()
	logutil.GetLogger(ctx).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("db_path", cfg.DBPath),
		zap.String("dataset", cfg.Dataset.Type),
		zap.String("ai_provider", cfg.AI.Provider),
	)

	userRepo := repo.NewUserRepo(db)
	faqRepo := repo.NewFaqRepo(db)
	complaintRepo := repo.NewComplaintRepo(db)
	chatLogRepo := repo.NewChatLogRepo(db)

	src, err := dataset.NewSource(cfg.Dataset)
	if err != nil {
		return fmt.Errorf("init dataset source: %w", err)
	}
	base, err := dataset.Load(ctx, src)
	if err != nil {
		return fmt.Errorf("load base dataset: %w", err)
	}
	logutil.GetLogger(ctx).Info("base dataset loaded", zap.Int("rows", base.Len()))

	// a missing AI credential means degraded mode, not a dead server
	var translateGen, fallbackGen ai.IGenerator
	if cfg.AI.Provider != "" {
		provider, err := ai.NewProvider(cfg.AI.Provider, cfg.AI.Data)
		if err != nil {
			return fmt.Errorf("init ai provider: %w", err)
		}
		translateGen = ai.NewGenerator(provider, cfg.AI.Model)
		fallbackGen = ai.NewGenerator(provider, cfg.AI.FallbackModel)
	} else {
		logutil.GetLogger(ctx).Warn("no ai provider configured, translation and generative fallback disabled")
	}

	aiTimeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
	translator := lang.NewTranslator(translateGen, aiTimeout)
	indexCache := textindex.NewCache(cfg.Retrieval.IndexCacheSize, time.Duration(cfg.Retrieval.IndexCacheTTLMin)*time.Minute)
	router := routing.NewRouter(indexCache, cfg.Retrieval.RouteThreshold)
	sessions := session.NewStore(cfg.Session.Size, time.Duration(cfg.Session.TTLMinutes)*time.Minute)

	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret), time.Hour*time.Duration(cfg.JWTTTLHours))
	if err := authService.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}
	answerService := service.NewAnswerService(faqRepo, base, indexCache, fallbackGen,
		cfg.Retrieval.CustomThreshold, cfg.Retrieval.BaseThreshold, cfg.Retrieval.TopK)
	chatService := service.NewChatService(sessions, translator, router, answerService, chatLogRepo)
	faqService := service.NewFaqService(faqRepo, indexCache)
	complaintService := service.NewComplaintService(complaintRepo, sessions, translator, router)
	exportService := service.NewExportService(faqRepo, chatLogRepo)

	deps := handler.RouterDeps{
		Auth:       handler.NewAuthHandler(authService),
		Chat:       handler.NewChatHandler(chatService),
		Faqs:       handler.NewFaqHandler(faqService),
		Complaints: handler.NewComplaintHandler(complaintService),
		ChatLogs:   handler.NewChatLogHandler(chatLogRepo),
		Export:     handler.NewExportHandler(exportService),
		JWTSecret:  []byte(cfg.JWTSecret),
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSOrigins),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	scheduler := schedule.New()
	cleanup := job.NewChatLogCleanupJob(chatLogRepo, time.Duration(cfg.Cleanup.KeepDays)*24*time.Hour)
	if err := scheduler.Add(cfg.Cleanup.Spec, cleanup); err != nil {
		return fmt.Errorf("schedule cleanup: %w", err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler.Start(runCtx)
	defer scheduler.Stop()

	logutil.GetLogger(ctx).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))
	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(ctx).Error("server error", zap.Error(err))
		}
	}()

	<-runCtx.Done()
	logutil.GetLogger(ctx).Info("server stopping...")
	return nil
}
