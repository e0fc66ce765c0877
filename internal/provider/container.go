package provider

import (
	"github.com/bolder-electric/internal/cache"
	"github.com/bolder-electric/internal/config"
	"github.com/bolder-electric/internal/logger"
	"github.com/bolder-electric/internal/queue"
	"github.com/bolder-electric/internal/repository"
	"github.com/bolder-electric/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminUserRepo    repository.AdminUserRepository
	AccessLogRepo    repository.AccessLogRepository
	ServiceRepo      repository.ServiceRepository
	TimeSlotRepo     repository.TimeSlotRepository
	AvailabilityRepo repository.AvailabilityRepository
	BookingRepo      repository.BookingRepository
	ContactInfoRepo  repository.ContactInfoRepository
	GalleryPhotoRepo repository.GalleryPhotoRepository

	// Services
	AuthService         *service.AuthService
	AccessLogService    *service.AccessLogService
	AvailabilityService *service.AvailabilityService
	BookingService      *service.BookingService
	CatalogService      *service.CatalogService
	ContactService      *service.ContactService
	GalleryService      *service.GalleryService
	UploadService       *service.UploadService
	EmailService        *service.EmailService
	CaptchaService      *service.CaptchaService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config, db *gorm.DB) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories(db)
	c.initServices()
	return c
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.AdminUserRepo = repository.NewAdminUserRepository(db)
	c.AccessLogRepo = repository.NewAccessLogRepository(db)
	c.ServiceRepo = repository.NewServiceRepository(db)
	c.TimeSlotRepo = repository.NewTimeSlotRepository(db)
	c.AvailabilityRepo = repository.NewAvailabilityRepository(db)
	c.BookingRepo = repository.NewBookingRepository(db)
	c.ContactInfoRepo = repository.NewContactInfoRepository(db)
	c.GalleryPhotoRepo = repository.NewGalleryPhotoRepository(db)
}

func (c *Container) initServices() {
	c.AccessLogService = service.NewAccessLogService(c.AccessLogRepo)
	c.AuthService = service.NewAuthService(c.Config, c.AdminUserRepo, c.AccessLogService)
	c.AvailabilityService = service.NewAvailabilityService(c.AvailabilityRepo, c.TimeSlotRepo)
	c.BookingService = service.NewBookingService(c.BookingRepo, c.QueueClient)
	c.CatalogService = service.NewCatalogService(c.ServiceRepo)
	c.ContactService = service.NewContactService(c.ContactInfoRepo)
	c.GalleryService = service.NewGalleryService(c.GalleryPhotoRepo)
	c.UploadService = service.NewUploadService(c.Config)
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
}
