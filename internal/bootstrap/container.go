package bootstrap

import (
	"time"

	"gorm.io/gorm"

	"github.com/tavor118/notes/internal/config"
	"github.com/tavor118/notes/internal/controller"
	"github.com/tavor118/notes/internal/pkg/logger"
	"github.com/tavor118/notes/internal/repository/unitofwork"
	"github.com/tavor118/notes/internal/service"
	"github.com/tavor118/notes/pkg/storage"
)

type Container struct {
	AuthController       controller.IAuthController
	UserController       controller.IUserController
	LabelController      controller.ILabelController
	ColorController      controller.IColorController
	CategoryController   controller.ICategoryController
	NoteController       controller.INoteController
	PublicNoteController controller.IPublicNoteController
	AttachmentController controller.IAttachmentController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	store := storage.NewLocalStorage(cfg.App.UploadDir)
	publicCache := service.NewPublicNoteCache(time.Duration(cfg.Cache.PublicTTLSeconds) * time.Second)

	authService := service.NewAuthService(uowFactory)
	userService := service.NewUserService(uowFactory)
	labelService := service.NewLabelService(uowFactory)
	colorService := service.NewColorService(uowFactory)
	categoryService := service.NewCategoryService(uowFactory)
	publicNoteService := service.NewPublicNoteService(uowFactory, publicCache)
	noteService := service.NewNoteService(uowFactory, publicNoteService)
	attachmentService := service.NewAttachmentService(uowFactory, store, publicNoteService, sysLogger)

	return &Container{
		AuthController:       controller.NewAuthController(authService),
		UserController:       controller.NewUserController(userService),
		LabelController:      controller.NewLabelController(labelService),
		ColorController:      controller.NewColorController(colorService),
		CategoryController:   controller.NewCategoryController(categoryService),
		NoteController:       controller.NewNoteController(noteService),
		PublicNoteController: controller.NewPublicNoteController(publicNoteService),
		AttachmentController: controller.NewAttachmentController(attachmentService),

		Logger: sysLogger,
	}
}
