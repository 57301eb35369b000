package handler

import (
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/valueops/pkg/httpcontext"
	"github.com/fastygo/valueops/usecase"
)

type HealthHandler struct {
	baseHandler
	dispatcher *usecase.Dispatcher
	started    time.Time
}

func NewHealthHandler(dispatcher *usecase.Dispatcher, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		dispatcher:  dispatcher,
		started:     time.Now(),
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	payload := map[string]interface{}{
		"timestamp":      time.Now().UTC(),
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
		"operations": map[string]interface{}{
			"queries":  h.dispatcher.Queries(),
			"commands": h.dispatcher.Commands(),
		},
	}
	h.respondSuccess(ctx, stdCtx, "", payload)
}
