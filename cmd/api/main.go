package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	aiadapter "github.com/YC815/entropy-backend/internal/adapter/ai"
	dbadapter "github.com/YC815/entropy-backend/internal/adapter/db"
	httpadapter "github.com/YC815/entropy-backend/internal/adapter/http"
	"github.com/YC815/entropy-backend/internal/adapter/http/handlers"
	httpmiddleware "github.com/YC815/entropy-backend/internal/adapter/http/middleware"
	appservice "github.com/YC815/entropy-backend/internal/app/service"
	"github.com/YC815/entropy-backend/internal/config"
	"github.com/YC815/entropy-backend/pkg/timeutil"
	"github.com/YC815/entropy-backend/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	location := timeutil.LoadLocation(cfg.Timezone)

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	taskRepository := dbadapter.NewTaskRepository(db)
	userRepository := dbadapter.NewUserRepository(db)
	completionStore := dbadapter.NewCompletionStore(db)

	gameService := appservice.NewGameService(userRepository, taskRepository, cfg.UserID, time.Now)
	taskService := appservice.NewTaskService(taskRepository, completionStore, gameService, cfg.UserID, time.Now)

	var intakeHandler *handlers.IntakeHandler
	if cfg.AIAPIKey != "" {
		extractor := aiadapter.NewExtractor(aiadapter.ExtractorConfig{
			BaseURL:         cfg.AIBaseURL,
			APIKey:          cfg.AIAPIKey,
			TranscribeModel: cfg.AITranscribeModel,
			ExtractModel:    cfg.AIExtractModel,
			Location:        location,
			Clock:           time.Now,
		})
		intakeService := appservice.NewIntakeService(extractor, taskService)
		intakeHandler = handlers.NewIntakeHandler(intakeService)
	} else {
		logger.Warn("GROQ_API_KEY not set, audio intake disabled")
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.GinZapMiddleware(logger))
	r.Use(httpmiddleware.CORSMiddleware(cfg.AllowedOrigins))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(taskService, location)
	dashboardHandler := handlers.NewDashboardHandler(gameService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, dashboardHandler, intakeHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
