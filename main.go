package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kyobegeorge57/falcon-finance/config"
	"github.com/kyobegeorge57/falcon-finance/controllers"
	"github.com/kyobegeorge57/falcon-finance/database"
	"github.com/kyobegeorge57/falcon-finance/middleware"
	"github.com/kyobegeorge57/falcon-finance/models"
	"github.com/kyobegeorge57/falcon-finance/uploads"
)

func initRouter(r *gin.Engine, env *controllers.Env) {
	r.GET("/", controllers.Root)
	r.GET("/index", controllers.Index)
	r.GET("/signup", controllers.SignupPage)
	r.POST("/signup", env.Signup)
	r.POST("/login", env.Login)
	r.GET("/logout", env.Logout)
	r.GET("/health", env.Health)

	protected := r.Group("/")
	protected.Use(middleware.Authenticate(env.Cfg.Server.SecretKey, env.Cache))
	{
		protected.POST("/submit-payment", env.SubmitPayment)
		protected.GET("/transactions", env.Transactions)
		protected.GET("/homepage", env.Homepage)
		protected.GET("/admin/users", env.AdminListUsers)
		protected.GET("/admin/transactions", env.AdminListTransactions)
	}
}

func connectRedis(addr string) *redis.Client {
	if addr == "" {
		slog.Warn("REDIS_ADDR not set, session revocation disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		slog.Error("could not connect to redis, session revocation disabled", "error", err)
		return nil
	}
	slog.Info("connected to redis", "addr", addr)
	return client
}

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Error("could not connect to database", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Transaction{}); err != nil {
		slog.Error("could not migrate schema", "error", err)
		os.Exit(1)
	}

	env := &controllers.Env{
		DB:      db,
		Cfg:     cfg,
		Uploads: &uploads.Store{Root: cfg.Server.UploadDir},
	}
	// A nil *redis.Client stored in the interface would not compare
	// equal to nil; only wire the cache when it actually connected.
	if client := connectRedis(cfg.Redis.Addr); client != nil {
		env.Cache = client
	}

	r := gin.Default()
	initRouter(r, env)

	slog.Info("starting server", "port", cfg.Server.Port)
	if err := r.Run(fmt.Sprintf(":%s", cfg.Server.Port)); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
