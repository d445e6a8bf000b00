package api

import (
	"context"
	"fmt"
	"log"

	"requisiciones/internal/app/config"
	"requisiciones/internal/app/dsn"
	"requisiciones/internal/app/handler"
	"requisiciones/internal/app/middleware"
	"requisiciones/internal/app/redis"
	"requisiciones/internal/app/repository"
	"requisiciones/internal/app/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func StartServer() {
	log.Println("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("error al leer la configuración: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("error al inicializar el repositorio: ", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatal("error al conectar con redis: ", err)
	}

	// MinIO es opcional: sin endpoint los reportes solo se descargan
	var minioClient *storage.MinIOClient
	if cfg.Minio.Endpoint != "" {
		minioClient, err = storage.NewMinIOClient(
			cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey,
			cfg.Minio.Bucket, cfg.Minio.UseSSL)
		if err != nil {
			logrus.Warn("minio no disponible, los reportes no se archivarán: ", err)
		}
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, minioClient, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	apiHandler.RegisterAPIRoutes(r, authMiddleware)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddress := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := r.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	log.Println("Server down")
}
