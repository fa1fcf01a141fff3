package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mrankit10-code/FitSphereAI/internal/config"
	"github.com/mrankit10-code/FitSphereAI/internal/handlers"
	"github.com/mrankit10-code/FitSphereAI/internal/middleware"
	"github.com/mrankit10-code/FitSphereAI/internal/repository"
	"github.com/mrankit10-code/FitSphereAI/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	var storageService services.StorageService
	if cfg.SupabaseURL != "" && cfg.SupabaseBucket != "" && cfg.SupabaseServiceKey != "" {
		storageService = services.NewSupabaseStorageService(cfg.SupabaseURL, cfg.SupabaseBucket, cfg.SupabaseServiceKey)
	}

	nutritionService := services.NewNutritionService(profileRepo, nil)
	workoutService := services.NewWorkoutService(profileRepo, userRepo, workoutRepo, nil)
	gamificationService := services.NewGamificationService(db)
	challengeService := services.NewChallengeService(db, challengeRepo)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	profileHandler := handlers.NewProfileHandler(profileRepo)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService, gamificationService)
	progressHandler := handlers.NewProgressHandler(progressRepo, storageService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	communityHandler := handlers.NewCommunityHandler(postRepo, commentRepo, userRepo)
	adminHandler := handlers.NewAdminHandler(userRepo, workoutRepo, postRepo, challengeRepo, challengeService)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	v1 := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	v1.Get("/profile", profileHandler.GetProfile)
	v1.Post("/profile", profileHandler.SaveProfile)

	nutrition := v1.Group("/nutrition")
	nutrition.Get("/plan", nutritionHandler.GetPlan)
	nutrition.Get("/today", nutritionHandler.TodaysMeals)

	workouts := v1.Group("/workouts")
	workouts.Post("/generate", workoutHandler.Generate)
	workouts.Get("", workoutHandler.List)
	workouts.Put("/:id/complete", workoutHandler.Complete)

	progress := v1.Group("/progress")
	progress.Post("", progressHandler.Create)
	progress.Get("", progressHandler.List)
	progress.Get("/stats", progressHandler.Stats)
	progress.Post("/photos", progressHandler.UploadPhotos)

	challenges := v1.Group("/challenges")
	challenges.Get("", challengeHandler.List)
	challenges.Post("/:id/join", challengeHandler.Join)
	challenges.Put("/:id/progress", challengeHandler.UpdateProgress)

	community := v1.Group("/community")
	community.Post("/posts", communityHandler.CreatePost)
	community.Get("/posts", communityHandler.ListPosts)
	community.Put("/posts/:id/like", communityHandler.ToggleLike)
	community.Post("/posts/:id/comments", communityHandler.CreateComment)
	community.Get("/leaderboard", communityHandler.Leaderboard)

	admin := v1.Group("/admin", middleware.AdminRequired())
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/stats", adminHandler.Stats)
	admin.Post("/challenges", adminHandler.CreateChallenge)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
}
