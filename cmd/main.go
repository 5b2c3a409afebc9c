package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/melisbekov/pdd-api/config"
	"github.com/melisbekov/pdd-api/database"
	_ "github.com/melisbekov/pdd-api/docs" // Swagger docs - auto-generated
	"github.com/melisbekov/pdd-api/internal/classifier"
	"github.com/melisbekov/pdd-api/internal/controller"
	"github.com/melisbekov/pdd-api/internal/logger"
	"github.com/melisbekov/pdd-api/internal/middleware"
	"github.com/melisbekov/pdd-api/internal/model"
	"github.com/melisbekov/pdd-api/internal/repository"
	"github.com/melisbekov/pdd-api/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title PDD Exam Preparation API
// @version 1.0
// @description Driving-rule exam preparation backend: question banks, exams, video lessons and traffic-sign classification.
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			NewClassifier,        // Loads the ONNX model once
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewRefreshTokenRepository,
			repository.NewCategoryRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerOptionRepository,
			repository.NewExamRepository,
			repository.NewVideoRepository,
			repository.NewCommentRepository,
			repository.NewLikeRepository,
			repository.NewFavoriteRepository,
			repository.NewPredictionRepository,
		),

		// Services layer
		fx.Provide(
			service.NewAuthService,
			service.NewUserService,
			service.NewCategoryService,
			service.NewQuestionService,
			service.NewAnswerService,
			service.NewExamService,
			service.NewVideoService,
			service.NewCommentService,
			service.NewLikeService,
			func(clf *classifier.Classifier, predictionRepo repository.PredictionRepository, cfg *config.Config) service.PredictionService {
				return service.NewPredictionService(clf, predictionRepo, cfg.Model.UploadDir)
			},
		),

		// API controllers layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewUserController,
			controller.NewCategoryController,
			controller.NewQuestionController,
			controller.NewAnswerController,
			controller.NewExamController,
			controller.NewVideoController,
			controller.NewCommentController,
			controller.NewLikeController,
			controller.NewModelController,
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
	r := gin.New()

	// Route request logs through zerolog
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
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

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func NewClassifier(cfg *config.Config) (*classifier.Classifier, error) {
	return classifier.New(cfg.Model.Path, cfg.Model.LibraryPath)
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	userRepo repository.UserRepository,
	authCtrl *controller.AuthController,
	userCtrl *controller.UserController,
	categoryCtrl *controller.CategoryController,
	questionCtrl *controller.QuestionController,
	answerCtrl *controller.AnswerController,
	examCtrl *controller.ExamController,
	videoCtrl *controller.VideoController,
	commentCtrl *controller.CommentController,
	likeCtrl *controller.LikeController,
	modelCtrl *controller.ModelController,
) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/logout", authCtrl.Logout)
		auth.POST("/refresh", authCtrl.Refresh)
	}

	category := router.Group("/category")
	{
		category.GET("", categoryCtrl.List)
		category.POST("", categoryCtrl.Create)
		category.GET("/:id", categoryCtrl.Get)
		category.PUT("/:id", categoryCtrl.Update)
		category.DELETE("/:id", categoryCtrl.Delete)
	}

	questions := router.Group("/questions")
	{
		questions.GET("", questionCtrl.List)
		questions.POST("", questionCtrl.Create)
		questions.GET("/:id", questionCtrl.Get)
		questions.PUT("/:id", questionCtrl.Update)
		questions.DELETE("/:id", questionCtrl.Delete)
		questions.POST("/:id/favorite", middleware.RequireAuth(cfg, userRepo), questionCtrl.ToggleFavorite)
	}

	// Same param position serves both question id (GET/POST) and answer id (PUT/DELETE).
	answers := router.Group("/answers")
	{
		answers.GET("/:id", answerCtrl.ListByQuestion)
		answers.POST("/:id", answerCtrl.Create)
		answers.PUT("/:id", answerCtrl.Update)
		answers.DELETE("/:id", answerCtrl.Delete)
	}

	exam := router.Group("/exam")
	{
		exam.GET("", examCtrl.List)
		exam.POST("", examCtrl.Create)
		exam.GET("/:id", examCtrl.Get)
		exam.PUT("/:id", examCtrl.Update)
		exam.DELETE("/:id", examCtrl.Delete)
	}

	videos := router.Group("/videos")
	{
		videos.GET("", videoCtrl.List)
		videos.POST("", videoCtrl.Create)
		videos.GET("/:id", videoCtrl.Get)
		videos.PUT("/:id", videoCtrl.Update)
		videos.DELETE("/:id", videoCtrl.Delete)
		videos.POST("/:id/comment", videoCtrl.AddComment)
		videos.POST("/:id/like", videoCtrl.Like)
	}

	comment := router.Group("/comment")
	{
		comment.GET("", commentCtrl.List)
		comment.POST("", commentCtrl.Create)
		comment.GET("/:id", commentCtrl.Get)
		comment.PUT("/:id", commentCtrl.Update)
		comment.DELETE("/:id", commentCtrl.Delete)
	}

	like := router.Group("/like")
	{
		like.GET("", likeCtrl.List)
		like.POST("", likeCtrl.Create)
		like.GET("/:id", likeCtrl.Get)
		like.DELETE("/:id", likeCtrl.Delete)
	}

	users := router.Group("/users")
	{
		users.GET("", userCtrl.List)
		users.POST("", userCtrl.Create)
		users.GET("/:id", userCtrl.Get)
		users.PUT("/:id", userCtrl.Update)
		users.DELETE("/:id", userCtrl.Delete)
	}

	m := router.Group("/model")
	{
		m.POST("/predict", modelCtrl.Predict)
		m.GET("/predictions", modelCtrl.ListPredictions)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("PDD API server starting on port %s", cfg.Server.Port)
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
		&model.User{},
		&model.RefreshToken{},
		&model.Category{},
		&model.Question{},
		&model.AnswerOption{},
		&model.Exam{},
		&model.Video{},
		&model.Comment{},
		&model.Like{},
		&model.Favorite{},
		&model.Prediction{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
