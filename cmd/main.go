package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quokka/config"
	"github.com/lshigami/Quokka/database"
	adminctrl "github.com/lshigami/Quokka/internal/controller/admin"
	userctrl "github.com/lshigami/Quokka/internal/controller/user"
	"github.com/lshigami/Quokka/internal/logger"
	"github.com/lshigami/Quokka/internal/middleware"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/lshigami/Quokka/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Quokka Learning Platform API
// @version 1.0
// @description Course catalog, multiple-choice quiz lifecycle, Q&A with voting, and study notes.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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
			repository.NewCourseRepository,
			repository.NewCategoryRepository,
			repository.NewExerciseRepository,
			repository.NewQuizQuestionRepository,
			repository.NewQuizAttemptRepository,
			repository.NewQuizAnswerRepository,
			repository.NewQAQuestionRepository,
			repository.NewQAAnswerRepository,
			repository.NewQAVoteRepository,
			repository.NewNoteRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewCatalogService,
			service.NewQuestionBankService,
			service.NewQuizGeneratorService,
			func(
				attemptRepo repository.QuizAttemptRepository,
				questionRepo repository.QuizQuestionRepository,
				answerRepo repository.QuizAnswerRepository,
				db *gorm.DB,
			) service.QuizSubmissionService {
				return service.NewQuizSubmissionService(attemptRepo, questionRepo, answerRepo, db)
			},
			service.NewQuizRetakeService,
			service.NewQAService,
			func(questionRepo repository.QAQuestionRepository, voteRepo repository.QAVoteRepository, db *gorm.DB) service.VoteService {
				return service.NewVoteService(questionRepo, voteRepo, db)
			},
			service.NewNoteService,
			service.NewQuestionDraftService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewCatalogController,
			adminctrl.NewQuestionBankController,
			adminctrl.NewQAModerationController,
			userctrl.NewCatalogController,
			userctrl.NewQuizController,
			userctrl.NewQAController,
			userctrl.NewNoteController,
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

	// Request logging through zerolog instead of Gin's default logger.
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

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminCatalogCtrl *adminctrl.CatalogController,
	questionBankCtrl *adminctrl.QuestionBankController,
	moderationCtrl *adminctrl.QAModerationController,
	catalogCtrl *userctrl.CatalogController,
	quizCtrl *userctrl.QuizController,
	qaCtrl *userctrl.QAController,
	noteCtrl *userctrl.NoteController,
) {
	// Admin routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin",
		middleware.RequireAuth(cfg.JWTSecret), middleware.RequireAdmin())
	{
		adminAPIGroup.POST("/courses", adminCatalogCtrl.CreateCourse)
		adminAPIGroup.POST("/categories", adminCatalogCtrl.CreateCategory)
		adminAPIGroup.POST("/exercises", adminCatalogCtrl.CreateExercise)

		adminAPIGroup.POST("/questions", questionBankCtrl.CreateQuestion)
		adminAPIGroup.GET("/questions", questionBankCtrl.ListQuestions)
		adminAPIGroup.PUT("/questions/:question_id", questionBankCtrl.UpdateQuestion)
		adminAPIGroup.DELETE("/questions/:question_id", questionBankCtrl.DeleteQuestion)
		adminAPIGroup.POST("/questions/drafts", questionBankCtrl.DraftQuestions)

		adminAPIGroup.GET("/qa/pending", moderationCtrl.ListPendingQuestions)
		adminAPIGroup.POST("/qa/questions/:question_id/moderation", moderationCtrl.ModerateQuestion)
		adminAPIGroup.POST("/qa/answers/:answer_id/moderation", moderationCtrl.ModerateAnswer)
	}

	// Student routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1", middleware.RequireAuth(cfg.JWTSecret))
	{
		userAPIGroup.GET("/courses", catalogCtrl.ListCourses)
		userAPIGroup.GET("/courses/:course_id/categories", catalogCtrl.ListCategories)
		userAPIGroup.GET("/courses/:course_id/exercises", catalogCtrl.ListExercises)

		userAPIGroup.POST("/exercises/:exercise_id/quiz-attempts", quizCtrl.GenerateQuiz)
		userAPIGroup.GET("/exercises/:exercise_id/my-attempts", quizCtrl.GetMyAttempts)
		userAPIGroup.POST("/quiz-attempts/:attempt_id/submission", quizCtrl.SubmitQuiz)
		userAPIGroup.POST("/quiz-attempts/:attempt_id/retake", quizCtrl.RetakeQuiz)
		userAPIGroup.GET("/quiz-attempts/:attempt_id", quizCtrl.GetAttempt)

		userAPIGroup.POST("/qa/questions", qaCtrl.AskQuestion)
		userAPIGroup.POST("/qa/questions/:question_id/answers", qaCtrl.AnswerQuestion)
		userAPIGroup.POST("/qa/questions/:question_id/votes", qaCtrl.CastVote)
		userAPIGroup.POST("/qa/questions/:question_id/answers/:answer_id/accept", qaCtrl.AcceptAnswer)
		userAPIGroup.GET("/courses/:course_id/qa", qaCtrl.ListCourseQuestions)

		userAPIGroup.POST("/notes", noteCtrl.CreateNote)
		userAPIGroup.GET("/notes", noteCtrl.ListNotes)
		userAPIGroup.PUT("/notes/:note_id", noteCtrl.UpdateNote)
		userAPIGroup.DELETE("/notes/:note_id", noteCtrl.DeleteNote)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quokka API server starting on port %s", cfg.Server.Port)
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
		&model.Course{},
		&model.Category{},
		&model.Exercise{},
		&model.QuizQuestion{},
		&model.QuizAttempt{},
		&model.QuizAnswer{},
		&model.QAQuestion{},
		&model.QAAnswer{},
		&model.QAVote{},
		&model.Note{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
