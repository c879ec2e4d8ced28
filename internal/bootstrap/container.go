package bootstrap

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"hsms-be/internal/config"
	"hsms-be/internal/controller"
	"hsms-be/internal/pkg/logger"
	"hsms-be/internal/pkg/mailer"
	"hsms-be/internal/repository/memory"
	"hsms-be/internal/repository/unitofwork"
	"hsms-be/internal/service"
)

type Container struct {
	// Controllers
	CustomerController     controller.ICustomerController
	ProviderController     controller.IProviderController
	AdminController        controller.IAdminController
	CategoryController     controller.ICategoryController
	RequestController      controller.IRequestController
	NotificationController controller.INotificationController

	// Background services, run by main.go
	MailDispatcherService service.IMailDispatcherService
	CleanupService        service.ICleanupService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.SenderEmail,
		cfg.App.FrontendURL,
	)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(cfg.Events.MailTopic, pubSub)
	mailDispatcherService := service.NewMailDispatcherService(
		cfg.Events.MailTopic,
		pubSub,
		emailService,
		sysLogger,
	)

	categoryCache := memory.NewCategoryCache(cfg.Jobs.CategoryCacheTTL)

	// Domain services
	customerService := service.NewCustomerService(uowFactory, publisherService, sysLogger, cfg.Auth.JWTSecret)
	providerService := service.NewProviderService(uowFactory, publisherService, sysLogger, cfg.Auth.JWTSecret)
	adminService := service.NewAdminService(uowFactory, publisherService, sysLogger, cfg.Auth.JWTSecret)
	categoryService := service.NewCategoryService(uowFactory, categoryCache, sysLogger)
	notificationService := service.NewNotificationService(uowFactory, sysLogger)
	requestService := service.NewRequestService(uowFactory, notificationService, publisherService, sysLogger)

	cleanupService := service.NewCleanupService(
		uowFactory,
		sysLogger,
		cfg.Jobs.CleanupInterval,
		cfg.Jobs.CleanupStartupDelay,
	)

	return &Container{
		CustomerController:     controller.NewCustomerController(customerService, cfg.Auth.JWTSecret),
		ProviderController:     controller.NewProviderController(providerService, cfg.Auth.JWTSecret),
		AdminController:        controller.NewAdminController(adminService, cfg.Auth.JWTSecret),
		CategoryController:     controller.NewCategoryController(categoryService, cfg.Auth.JWTSecret),
		RequestController:      controller.NewRequestController(requestService, cfg.Auth.JWTSecret),
		NotificationController: controller.NewNotificationController(notificationService, cfg.Auth.JWTSecret),

		MailDispatcherService: mailDispatcherService,
		CleanupService:        cleanupService,

		Logger: sysLogger,
	}
}
