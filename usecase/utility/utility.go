package utility

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/valueops/domain"
	"github.com/fastygo/valueops/pkg/logger"
	"github.com/fastygo/valueops/usecase"
	"github.com/fastygo/valueops/utils"
)

const (
	QueryReverseString    = "utils.reverse_string"
	QueryCapitalize       = "utils.capitalize"
	QueryIsEven           = "utils.is_even"
	QueryRemoveDuplicates = "utils.remove_duplicates"
	QueryAverage          = "utils.average"
	QueryAsyncOperation   = "utils.async_operation"
)

// DefaultMaxDelay caps async_operation when Config.MaxDelay is unset. It stays
// below the default request timeout.
const DefaultMaxDelay = 4 * time.Second

// Config bounds the async operation.
type Config struct {
	DefaultDelay time.Duration
	MaxDelay     time.Duration
}

type UseCase struct {
	cfg    Config
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *UseCase {
	if cfg.DefaultDelay <= 0 {
		cfg.DefaultDelay = utils.DefaultDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultMaxDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{cfg: cfg, logger: logger}
}

// Register exposes the helpers as queries reading the "value" parameter.
// The async query reads an optional "delay_ms" instead.
func (uc *UseCase) Register(d *usecase.Dispatcher) {
	d.RegisterQuery(QueryReverseString, uc.wrap(QueryReverseString, func(v any) (any, error) {
		s, err := domain.RequireText(v, domain.ErrNotString)
		if err != nil {
			return nil, err
		}
		return utils.ReverseString(s), nil
	}))
	d.RegisterQuery(QueryCapitalize, uc.wrap(QueryCapitalize, func(v any) (any, error) {
		s, err := domain.RequireText(v, domain.ErrNotString)
		if err != nil {
			return nil, err
		}
		return utils.Capitalize(s), nil
	}))
	d.RegisterQuery(QueryIsEven, uc.wrap(QueryIsEven, func(v any) (any, error) {
		n, err := domain.RequireNumber(v, domain.ErrNotNumber)
		if err != nil {
			return nil, err
		}
		return utils.IsEven(n), nil
	}))
	d.RegisterQuery(QueryRemoveDuplicates, uc.wrap(QueryRemoveDuplicates, func(v any) (any, error) {
		seq, err := domain.RequireSequence(v, domain.ErrNotArray)
		if err != nil {
			return nil, err
		}
		return utils.RemoveDuplicateValues(seq), nil
	}))
	d.RegisterQuery(QueryAverage, uc.wrap(QueryAverage, func(v any) (any, error) {
		values, err := domain.RequireNumericSequence(v)
		if err != nil {
			return nil, err
		}
		avg, err := utils.Average(values)
		if err != nil {
			return nil, err
		}
		return avg, nil
	}))
	d.RegisterQuery(QueryAsyncOperation, uc.asyncOperation)
}

func (uc *UseCase) wrap(name string, fn func(v any) (any, error)) usecase.QueryHandler {
	return func(ctx context.Context, params usecase.Params) (interface{}, error) {
		v, _ := params.Value("value")
		out, err := fn(v)
		if err != nil {
			logger.WithRequestID(ctx, uc.logger).Debug("utility rejected",
				zap.String("query", name),
				zap.Error(err),
			)
			return nil, err
		}
		return usecase.Result{Value: out}, nil
	}
}

func (uc *UseCase) asyncOperation(ctx context.Context, params usecase.Params) (interface{}, error) {
	delay, err := uc.delay(params)
	if err != nil {
		return nil, err
	}

	log := logger.WithRequestID(ctx, uc.logger)
	started := time.Now()
	deferred := utils.AsyncOperation(delay)
	value, err := deferred.Wait(ctx)
	if err != nil {
		deferred.Cancel()
		log.Warn("async operation interrupted", zap.Duration("delay", delay), zap.Error(err))
		return nil, domain.WrapError(domain.ErrCodeInternal, "async operation interrupted", err)
	}
	log.Debug("async operation completed",
		zap.Duration("delay", delay),
		zap.Duration("elapsed", time.Since(started)),
	)
	return usecase.Result{Value: value}, nil
}

// delay reads "delay_ms", clamping negatives to zero and large values to MaxDelay.
func (uc *UseCase) delay(params usecase.Params) (time.Duration, error) {
	raw, ok := params.Value("delay_ms")
	if !ok || raw == nil {
		return uc.cfg.DefaultDelay, nil
	}
	ms, err := domain.RequireNumber(raw, domain.ErrNotNumber)
	if err != nil {
		return 0, err
	}
	delay := time.Duration(ms * float64(time.Millisecond))
	if !(ms > 0) {
		delay = 0
	}
	if ms > float64(uc.cfg.MaxDelay/time.Millisecond) {
		delay = uc.cfg.MaxDelay
	}
	return delay, nil
}

var _ usecase.Registrar = (*UseCase)(nil)
