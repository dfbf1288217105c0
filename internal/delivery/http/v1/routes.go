package v1

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	healthPath   = "/health"
	apiPrefix    = "/api"
	tasksPath    = apiPrefix + "/tasks"
	frontendPage = "index.html"
)

// NewRouter returns an engine with the middleware chain and every route
// registered.
func NewRouter(h Handler) *gin.Engine {
	router := gin.New()
	router.Use(h.HandleRequestID)
	router.Use(h.HandleRequestLogger)
	router.Use(h.HandleRecovery)
	RegisterRoutes(router, h)
	return router
}

// RegisterRoutes binds the route table. The status filter goes before the
// by-id routes so a status name is never read as an id.
func RegisterRoutes(router *gin.Engine, h Handler) {
	router.GET(healthPath, h.HandleHealth)
	router.HEAD(healthPath, h.HandleHealth)

	tasksRouter := router.Group(tasksPath)
	tasksRouter.GET("", h.HandleGetTasks)
	tasksRouter.GET("/status/:status", h.HandleGetTasksByStatus)
	tasksRouter.GET("/:id", h.HandleGetTask)
	tasksRouter.POST("", h.HandleCreateTask)
	tasksRouter.PUT("/:id", h.HandleUpdateTask)
	tasksRouter.DELETE("/:id", h.HandleDeleteTask)

	router.NoRoute(h.HandleNoRoute)
}

// HandleNoRoute answers API misses with JSON and serves the frontend,
// falling back to its entry page, for everything else.
func (h *handlerImpl) HandleNoRoute(c *gin.Context) {
	method := c.Request.Method
	if isReservedPath(c.Request.URL.Path) || (method != http.MethodGet && method != http.MethodHead) {
		abort(c, newNotFoundError(errRouteNotFound.Error()))
		return
	}

	name, ok := h.frontendFile(c.Request.URL.Path)
	if !ok {
		abort(c, newNotFoundError(errRouteNotFound.Error()))
		return
	}
	c.File(name)
}

// isReservedPath reports paths the frontend must never answer.
func isReservedPath(p string) bool {
	return p == healthPath || p == apiPrefix || strings.HasPrefix(p, apiPrefix+"/")
}

func (h *handlerImpl) frontendFile(urlPath string) (string, bool) {
	if h.frontendDir == "" {
		return "", false
	}

	name := filepath.Join(h.frontendDir, filepath.FromSlash(path.Clean("/"+urlPath)))
	if isRegularFile(name) {
		return name, true
	}

	index := filepath.Join(h.frontendDir, frontendPage)
	if isRegularFile(index) {
		return index, true
	}
	return "", false
}

func isRegularFile(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.Mode().IsRegular()
}
