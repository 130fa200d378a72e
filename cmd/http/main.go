package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"compliance-service/internal/app/config"
	"compliance-service/internal/app/delivery/http/controllers"
	"compliance-service/internal/app/delivery/http/middlewares"
	"compliance-service/internal/app/delivery/http/routers"
	"compliance-service/internal/app/drivers/database"
	"compliance-service/internal/app/drivers/logger"
	smtpdriver "compliance-service/internal/app/drivers/mailer"
	"compliance-service/internal/app/drivers/messaging"
	"compliance-service/internal/app/drivers/storage"
	"compliance-service/internal/app/services/admin"
	"compliance-service/internal/app/services/assessments"
	"compliance-service/internal/app/services/questionnaires"
	"compliance-service/internal/app/services/reports"
	"compliance-service/internal/app/services/shared/mailer"
	redisrepo "compliance-service/internal/app/services/shared/redis"
	"compliance-service/internal/app/services/shared/smtp"
	miniostorage "compliance-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	bootLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	smtpClient := smtpdriver.NewSMTPClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	mailWorkerStop := bootstrapingTheApp(&bootstrap, mongoDB, minioClient, smtpClient)
	bootstrap.MailWorkerStop = mailWorkerStop

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Printf("Error during shutdown: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapingTheApp(
	bootstrap *config.Bootstrap,
	mongoDB *mongo.Client,
	minioClient *minio.Client,
	smtpClient *smtpdriver.SMTPClient,
) func() {
	// Shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	objectStorage := miniostorage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)
	smtpService := smtp.NewSmtpService(smtpClient)

	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		log.Fatalf("Failed to initialize mailer service: %v", err)
	}

	mailWorker, err := mailer.NewMailWorker(
		bootstrap.RabbitMQ,
		smtpService,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.RabbitMQMailerQueue,
		bootstrap.InternalConfig.App.MailerRatePerSecond,
	)
	if err != nil {
		log.Fatalf("Failed to initialize mail worker: %v", err)
	}
	if err := mailWorker.Start(); err != nil {
		log.Fatalf("Failed to start mail worker: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Admin
	identityRepository := admin.NewIdentityMongoRepository(mongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	auditLogRepository := admin.NewAuditLogMongoRepository(mongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	settingsRepository := admin.NewSystemSettingsMongoRepository(mongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Questionnaire
	editSession := questionnaires.NewEditSession(redisRepository, bootstrap.InternalConfig.App.EditBufferExpiryTimeInHours)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(objectStorage, editSession, auditLogRepository, bootstrap.Logger)
	questionnaireController := controllers.NewQuestionnaireController(bootstrap.Logger, questionnaireUsecase, editSession)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if ok := questionnaireUsecase.InitializeVersioning(ctx); !ok {
		log.Fatalf("Failed to initialize questionnaire versioning")
	}

	// Assessments
	inProgressRepository := assessments.NewInProgressMongoRepository(mongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	completedRepository := assessments.NewCompletedMongoRepository(mongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	assessmentUsecase := assessments.NewAssessmentUsecase(
		inProgressRepository,
		completedRepository,
		objectStorage,
		questionnaireUsecase,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	assessmentController := controllers.NewAssessmentController(bootstrap.Logger, assessmentUsecase)

	// Reports
	reportUsecase := reports.NewReportUsecase(assessmentUsecase, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	reportController := controllers.NewReportController(bootstrap.Logger, reportUsecase)

	// Admin dispatch
	adminUsecase := admin.NewAdminUsecase(
		identityRepository,
		auditLogRepository,
		settingsRepository,
		inProgressRepository,
		completedRepository,
		mailerService,
		bootstrap.Logger,
	)
	adminController := controllers.NewAdminController(bootstrap.Logger, adminUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		questionnaireController,
		assessmentController,
		reportController,
		adminController,
	)

	return mailWorker.Stop
}
