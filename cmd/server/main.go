package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"rate_front_end/internal/backend"
	"rate_front_end/internal/cache"
	"rate_front_end/internal/config"
	"rate_front_end/internal/listing"
	"rate_front_end/internal/routes"
	"rate_front_end/internal/services"
	"rate_front_end/internal/session"
)

func main() {
	config.Load()

	secret := config.SessionSecret()
	if secret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}

	// Redis porte les sessions, les caches de catalogue et le rate limit
	if err := cache.InitRedis(); err != nil {
		log.Fatalf("❌ Échec initialisation Redis: %v", err)
	}
	defer cache.CloseRedis()

	api := backend.New(config.BackendBaseURL())
	log.Println("✅ Client API catalogue prêt :", config.BackendBaseURL())

	sessions := session.New(
		[]byte(secret),
		session.NewRedisPersistence(cache.RedisClient),
		api,
	)

	// Stockage des images : MinIO direct si configuré, sinon flux presigné
	var uploader services.Uploader
	if minioUploader := services.ConnectMinio(); minioUploader != nil {
		uploader = minioUploader
	} else {
		uploader = services.NewPresignedUploader(api)
		log.Println("✅ Upload via URLs presignées du backend")
	}

	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		API:        api,
		Sessions:   sessions,
		Signatures: listing.NewRedisSignatures(cache.RedisClient),
		Uploader:   uploader,
	})

	port := config.Port()
	log.Println("🚀 Passerelle Rate Everything lancée sur le port", port)
	r.Run(":" + port)
}
