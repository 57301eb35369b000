package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/valueops/api/handler"
)

type Handlers struct {
	Operation *apiHandler.OperationHandler
	Health    *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	r.POST("/api/v1/queries/{name}", authMiddleware(handlers.Operation.Query))
	r.POST("/api/v1/commands/{name}", authMiddleware(handlers.Operation.Command))

	return r
}
