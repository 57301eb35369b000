package users

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/valueops/domain"
	"github.com/fastygo/valueops/pkg/logger"
	"github.com/fastygo/valueops/usecase"
)

const CommandEvaluate = "user.evaluate"

// Evaluation reports a user's state after the requested mutations.
type Evaluation struct {
	User       domain.UserSnapshot `json:"user"`
	IsAdult    bool                `json:"is_adult"`
	ValidEmail bool                `json:"valid_email"`
}

type UseCase struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{logger: logger}
}

func (uc *UseCase) Register(d *usecase.Dispatcher) {
	d.RegisterCommand(CommandEvaluate, uc.evaluate)
}

// Evaluate builds a user from name, email and age, then applies "new_age"
// through UpdateAge and "active" through Activate/Deactivate when present.
// Construction does not validate; only the mutations can fail.
func (uc *UseCase) Evaluate(ctx context.Context, params usecase.Params) (*Evaluation, error) {
	user, err := decodeUser(params)
	if err != nil {
		return nil, uc.reject(ctx, err)
	}

	if raw, ok := params.Value("new_age"); ok {
		if err := user.UpdateAgeValue(raw); err != nil {
			return nil, uc.reject(ctx, err)
		}
	}

	if raw, ok := params.Value("active"); ok {
		active, err := domain.RequireBool(raw, domain.ErrInvalidPayload)
		if err != nil {
			return nil, uc.reject(ctx, err)
		}
		if active {
			user.Activate()
		} else {
			user.Deactivate()
		}
	}

	return &Evaluation{
		User:       user.ToJSON(),
		IsAdult:    user.IsAdult(),
		ValidEmail: user.IsValidEmail(),
	}, nil
}

func (uc *UseCase) evaluate(ctx context.Context, params usecase.Params) (interface{}, error) {
	eval, err := uc.Evaluate(ctx, params)
	if err != nil {
		return nil, err
	}
	return eval, nil
}

func (uc *UseCase) reject(ctx context.Context, err error) error {
	logger.WithRequestID(ctx, uc.logger).Debug("user evaluation rejected", zap.Error(err))
	return err
}

func decodeUser(params usecase.Params) (*domain.User, error) {
	var name, email string
	var age float64
	if raw, ok := params.Value("name"); ok {
		s, err := domain.RequireText(raw, domain.ErrNotString)
		if err != nil {
			return nil, err
		}
		name = s
	}
	if raw, ok := params.Value("email"); ok {
		s, err := domain.RequireText(raw, domain.ErrNotString)
		if err != nil {
			return nil, err
		}
		email = s
	}
	if raw, ok := params.Value("age"); ok {
		n, err := domain.RequireNumber(raw, domain.ErrInvalidAge)
		if err != nil {
			return nil, err
		}
		age = n
	}
	return domain.NewUser(name, email, age), nil
}

var _ usecase.Registrar = (*UseCase)(nil)
