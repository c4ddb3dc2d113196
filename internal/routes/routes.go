package routes

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rate_front_end/internal/backend"
	"rate_front_end/internal/handlers/category"
	"rate_front_end/internal/handlers/item"
	"rate_front_end/internal/handlers/user"
	"rate_front_end/internal/listing"
	"rate_front_end/internal/middleware"
	"rate_front_end/internal/services"
	"rate_front_end/internal/session"
)

// Deps regroupe ce que les handlers reçoivent par injection
type Deps struct {
	API        *backend.Client
	Sessions   *session.Store
	Signatures listing.Signatures
	Uploader   services.Uploader
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	frontOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontOrigin == "" {
		frontOrigin = "http://localhost:3001"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	itemHandler := item.New(deps.API, deps.Sessions)
	categoryHandler := category.New(deps.API, deps.Sessions, deps.Signatures)
	userHandler := user.New(deps.API, deps.Sessions, deps.Uploader)

	api := r.Group("/api")

	// Authentification (session fermée ou inexistante)
	auth := api.Group("/auth")
	auth.POST("/login", middleware.LoginRateLimit(), userHandler.Login)
	auth.POST("/register", userHandler.Register)
	auth.POST("/logout", userHandler.Logout)

	// Pages publiques : la session est résolue si présente (myRating),
	// mais jamais exigée
	pages := api.Group("/pages", middleware.SessionAuth(deps.Sessions, false))
	pages.GET("/item/:slug", itemHandler.Detail)
	pages.GET("/categories", categoryHandler.Index)
	pages.POST("/category/:name", categoryHandler.Page)

	// Opérations réservées aux sessions ouvertes
	authed := api.Group("", middleware.SessionAuth(deps.Sessions, true))
	authed.POST("/ratings", itemHandler.SubmitRating)
	authed.POST("/items", itemHandler.Create)
	authed.GET("/users/me", userHandler.Me)
	authed.GET("/users/profile", userHandler.Profile)
	authed.PATCH("/users/profile", userHandler.UpdateProfile)
	authed.POST("/users/change-password", userHandler.ChangePassword)
	authed.GET("/users/ratings", userHandler.MyRatings)
	authed.POST("/users/avatar", userHandler.UploadAvatar)
}
