package calculator

import (
	"context"

	"go.uber.org/zap"

	calc "github.com/fastygo/valueops/calculator"
	"github.com/fastygo/valueops/pkg/logger"
	"github.com/fastygo/valueops/usecase"
)

// QueryPrefix namespaces the arithmetic queries, e.g. "calculator.divide".
const QueryPrefix = "calculator."

type UseCase struct {
	calc   calc.Calculator
	logger *zap.Logger
}

func New(logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		calc:   calc.New(),
		logger: logger,
	}
}

// Register exposes one query per operator. Each takes operands "a" and "b".
func (uc *UseCase) Register(d *usecase.Dispatcher) {
	for _, op := range calc.Operators {
		d.RegisterQuery(QueryPrefix+string(op), func(ctx context.Context, params usecase.Params) (interface{}, error) {
			a, _ := params.Value("a")
			b, _ := params.Value("b")
			result, err := uc.Evaluate(ctx, op, a, b)
			if err != nil {
				return nil, err
			}
			return usecase.Result{Value: result}, nil
		})
	}
}

func (uc *UseCase) Evaluate(ctx context.Context, op calc.Operator, a, b any) (float64, error) {
	result, err := uc.calc.Apply(op, a, b)
	if err != nil {
		logger.WithRequestID(ctx, uc.logger).Debug("arithmetic rejected",
			zap.String("operator", string(op)),
			zap.Error(err),
		)
		return 0, err
	}
	return result, nil
}

var _ usecase.Registrar = (*UseCase)(nil)
