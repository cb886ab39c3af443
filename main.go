package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"estore-api/config"
	_ "estore-api/docs"
	"estore-api/middleware"
	"estore-api/models"
	"estore-api/repositories"
	"estore-api/routes"
	"estore-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title E-Store API
// @version 1.0
// @description Storefront backend: authentication, orders and admin back office.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	createAdmin := flag.Bool("create-admin", false, "seed the admin account and exit")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(os.Stdout)

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	config.ConnectDB()
	defer config.CloseDB()
	config.MigrateDB()

	if *createAdmin {
		seedAdminUser()
		return
	}

	config.InitRedis()
	defer config.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Info().Str("port", config.AppConfig.Port).Str("env", config.AppConfig.AppEnv).Msg("server starting")

	if err := router.Run(port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// seedAdminUser creates the back-office account when it does not exist.
// Self-service registration can never produce an admin, so this (or an
// existing admin promoting a user) is the only way in.
func seedAdminUser() {
	ctx := context.Background()
	userRepo := repositories.NewUserRepository(config.DB)

	email := envOr("ADMIN_EMAIL", "admin@estore.com")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal().Msg("ADMIN_PASSWORD is not set")
	}

	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		log.Info().Str("email", email).Msg("admin user already exists")
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		log.Fatal().Err(err).Msg("failed to check for existing admin")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin password")
	}

	admin := &models.User{
		Name:     envOr("ADMIN_NAME", "Admin User"),
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("failed to create admin user")
	}

	log.Info().Str("email", email).Msg("admin user created")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
