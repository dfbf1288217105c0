package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/config"
	"github.com/adanyl0v/go-task-manager/internal/services"
)

type Handler interface {
	HandleHealth(c *gin.Context)
	HandleNoRoute(c *gin.Context)

	HandleRequestID(c *gin.Context)
	HandleRequestLogger(c *gin.Context)
	HandleRecovery(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleGetTasksByStatus(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger      zerolog.Logger
	tasks       services.TaskService
	env         string
	frontendDir string
	recovery    gin.HandlerFunc
}

// New builds the API handler. Internal error details are only included in
// responses when env is not config.EnvProd. An empty frontendDir disables
// serving the frontend.
func New(
	logger zerolog.Logger,
	taskService services.TaskService,
	env string,
	frontendDir string,
) Handler {
	h := &handlerImpl{
		logger:      logger,
		tasks:       taskService,
		env:         env,
		frontendDir: frontendDir,
	}
	h.recovery = gin.CustomRecovery(h.handlePanic)
	return h
}

func (h *handlerImpl) exposeErrors() bool {
	return h.env != config.EnvProd
}
