package handler

import (
	"context"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/valueops/api/transport"
	"github.com/fastygo/valueops/domain"
	"github.com/fastygo/valueops/pkg/httpcontext"
	"github.com/fastygo/valueops/usecase"
)

type OperationHandler struct {
	baseHandler
	dispatcher *usecase.Dispatcher
}

func NewOperationHandler(dispatcher *usecase.Dispatcher, adapter *httpcontext.Adapter, logger *zap.Logger) *OperationHandler {
	return &OperationHandler{
		baseHandler: newBaseHandler(adapter, logger),
		dispatcher:  dispatcher,
	}
}

// @Summary Run a named query
// @Tags operations
// @Accept json
// @Produce json
// @Router /api/v1/queries/{name} [post]
func (h *OperationHandler) Query(ctx *fasthttp.RequestCtx) {
	h.execute(ctx, h.dispatcher.ExecuteQuery)
}

// @Summary Run a named command
// @Tags operations
// @Accept json
// @Produce json
// @Router /api/v1/commands/{name} [post]
func (h *OperationHandler) Command(ctx *fasthttp.RequestCtx) {
	h.execute(ctx, h.dispatcher.ExecuteCommand)
}

type executeFunc func(ctx context.Context, name string, params usecase.Params) (interface{}, error)

func (h *OperationHandler) execute(ctx *fasthttp.RequestCtx, exec executeFunc) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	name, _ := ctx.UserValue("name").(string)
	if name == "" {
		h.respondError(ctx, stdCtx, name, domain.ErrUnknownOperation)
		return
	}

	params, err := transport.DecodeParams(ctx.PostBody())
	if err != nil {
		h.respondError(ctx, stdCtx, name, domain.ErrInvalidPayload)
		return
	}

	result, err := exec(stdCtx, name, params)
	if err != nil {
		h.respondError(ctx, stdCtx, name, err)
		return
	}
	h.respondSuccess(ctx, stdCtx, name, result)
}
