package main

import (
	"log"
	"os"
	"strings"

	"gymapp/internal/stubserver"
	"gymapp/pkg/utils"

	"github.com/gin-contrib/cors"
)

func main() {
	utils.InitLogger(utils.Getenv("LOG_LEVEL", "info"))

	secret := utils.Getenv("JWT_SECRET", "local-dev-secret-change-me")
	server := stubserver.NewServer(stubserver.Options{
		Secret:   []byte(secret),
		Envelope: utils.GetenvBool("STUB_ENVELOPE", false),
		Seed:     true,
	})

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:8081"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Idempotency-Key"}
	config.AllowCredentials = true

	engine := server.Engine(cors.New(config))

	port := utils.Getenv("PORT", "8000")
	utils.LogInfo("Stub backend starting", map[string]interface{}{"port": port, "demo_user": stubserver.DemoClientEmail})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start stub backend")
		log.Fatalf("Failed to start stub backend: %v", err)
	}
}
