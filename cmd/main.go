package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Mockingbird/config"
	"github.com/lshigami/Mockingbird/database"
	_ "github.com/lshigami/Mockingbird/docs" // Swagger docs - auto-generated
	"github.com/lshigami/Mockingbird/internal/ai"
	"github.com/lshigami/Mockingbird/internal/controller"
	"github.com/lshigami/Mockingbird/internal/logger"
	"github.com/lshigami/Mockingbird/internal/model"
	"github.com/lshigami/Mockingbird/internal/repository"
	"github.com/lshigami/Mockingbird/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Mockingbird Interview API
// @version 1.0
// @description API for AI-driven mock interview sessions: question generation, answer evaluation, biometric metrics, and final feedback.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewInterviewRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
		),

		// AI Collaborators - one Gemini client behind the four contracts
		fx.Provide(
			ai.NewGeminiService,
			func(g *ai.GeminiService) ai.QuestionGenerator { return g },
			func(g *ai.GeminiService) ai.AnswerEvaluator { return g },
			func(g *ai.GeminiService) ai.MetricsAnalyzer { return g },
			func(g *ai.GeminiService) ai.FeedbackGenerator { return g },
		),

		// Services Layer
		fx.Provide(
			service.NewSessionLocks,
			service.NewScoreAggregatorService,
			service.NewInterviewService,
			service.NewSubmissionService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewInterviewController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Route gin access logs through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	interviewCtrl *controller.InterviewController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/interviews", interviewCtrl.CreateInterview)
		api.GET("/interviews", interviewCtrl.ListInterviews)
		api.GET("/interviews/:interview_id", interviewCtrl.GetInterview)

		api.POST("/interviews/:interview_id/answers", interviewCtrl.SubmitAnswer)
		api.PUT("/interviews/:interview_id/metrics", interviewCtrl.UpdateMetrics)

		api.POST("/interviews/:interview_id/pause", interviewCtrl.PauseInterview)
		api.POST("/interviews/:interview_id/resume", interviewCtrl.ResumeInterview)
		api.POST("/interviews/:interview_id/complete", interviewCtrl.CompleteInterview)
		api.POST("/interviews/:interview_id/abandon", interviewCtrl.AbandonInterview)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Mockingbird Interview API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Interview{},
		&model.Question{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
