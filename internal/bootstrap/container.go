package bootstrap

import (
	"log"

	"ai-helper-be/internal/config"
	"ai-helper-be/internal/controller"
	"ai-helper-be/internal/pkg/logger"
	"ai-helper-be/internal/pkg/mailer"
	"ai-helper-be/internal/pkg/serverutils"
	"ai-helper-be/internal/repository/implementation"
	"ai-helper-be/internal/repository/memory"
	"ai-helper-be/internal/repository/unitofwork"
	"ai-helper-be/internal/service"

	pktNats "ai-helper-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const activityTopic = "activity-events"

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	ProjectController   controller.IProjectController
	FileController      controller.IFileController
	AIController        controller.IAIController
	AIModelController   controller.IAIModelController
	DashboardController controller.IDashboardController

	// Middleware
	SessionMiddleware fiber.Handler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Optional NATS mirror for activity events. A missing broker is not fatal.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
	}

	// In-memory session storage
	sessionRepo := memory.NewSessionRepository(cfg.Session.TTLHours)

	// 3. Services
	publisherService := service.NewPublisherService(activityTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, activityTopic, sysLogger, natsPub)

	authService := service.NewAuthService(uowFactory, sessionRepo, emailService, publisherService, cfg.Usage)
	userService := service.NewUserService(uowFactory, publisherService)
	projectService := service.NewProjectService(uowFactory, publisherService)
	fileService := service.NewFileService(uowFactory, publisherService)
	aiModelService := service.NewAIModelService(uowFactory)
	assistantService := service.NewAssistantService(uowFactory, publisherService, cfg.Usage)
	usageService := service.NewUsageService(uowFactory, cfg.Usage)
	dashboardService := service.NewDashboardService(uowFactory, usageService)

	// 4. Middleware
	sessionMiddleware := serverutils.NewSessionMiddleware(
		cfg.Session.CookieName,
		sessionRepo,
		implementation.NewUserRepository(db),
	)

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService, cfg.Session.CookieName, cfg.Session.TTLHours),
		UserController:      controller.NewUserController(userService),
		ProjectController:   controller.NewProjectController(projectService),
		FileController:      controller.NewFileController(fileService),
		AIController:        controller.NewAIController(assistantService),
		AIModelController:   controller.NewAIModelController(aiModelService),
		DashboardController: controller.NewDashboardController(dashboardService),
		SessionMiddleware:   sessionMiddleware,
		ConsumerService:     consumerService,
	}
}
