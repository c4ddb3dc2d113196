package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// BackendBaseURL retourne l'URL de base de l'API catalogue (sans slash final)
func BackendBaseURL() string {
	url := os.Getenv("BACKEND_BASE_URL")
	if url == "" {
		url = "http://localhost:8080/api"
	}
	return url
}

func RedisAddr() string {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return addr
}

func SessionSecret() string {
	return os.Getenv("SESSION_SECRET")
}

func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	return port
}
