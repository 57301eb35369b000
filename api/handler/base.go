package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/valueops/api/transport"
	"github.com/fastygo/valueops/domain"
	"github.com/fastygo/valueops/pkg/httpcontext"
	"github.com/fastygo/valueops/pkg/logger"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
		status = http.StatusInternalServerError
		body, _ = json.Marshal(transport.NewError(string(domain.ErrCodeInternal), "failed to encode response", payload.Meta))
	}
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

// meta ties a response to the request id attached to stdCtx and the
// operation it answers.
func meta(stdCtx context.Context, operation string) *transport.Meta {
	return transport.NewMeta(logger.RequestID(stdCtx), operation)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, stdCtx context.Context, operation string, data interface{}) {
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(data, meta(stdCtx, operation)))
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, stdCtx context.Context, operation string, err error) {
	status, code := mapError(err)
	if status == http.StatusInternalServerError {
		logger.WithRequestID(stdCtx, h.logger).Error("operation failed",
			zap.String("operation", operation),
			zap.Error(err),
		)
	}
	h.respondJSON(ctx, status, transport.NewError(code, err.Error(), meta(stdCtx, operation)))
}

func mapError(err error) (int, string) {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeUnauthorized):
		return http.StatusUnauthorized, string(domain.ErrCodeUnauthorized)
	case domain.IsDomainError(err, domain.ErrCodeInvalidArgument):
		return http.StatusBadRequest, string(domain.ErrCodeInvalidArgument)
	case domain.IsDomainError(err, domain.ErrCodeDivisionByZero):
		return http.StatusBadRequest, string(domain.ErrCodeDivisionByZero)
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return http.StatusNotFound, string(domain.ErrCodeNotFound)
	default:
		return http.StatusInternalServerError, string(domain.ErrCodeInternal)
	}
}
