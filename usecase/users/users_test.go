package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/valueops/domain"
	"github.com/fastygo/valueops/usecase"
)

func TestEvaluate(t *testing.T) {
	uc := New(nil)

	eval, err := uc.Evaluate(context.Background(), usecase.Params{
		"name":  "Max",
		"email": "max@example.com",
		"age":   25.0,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UserSnapshot{Name: "Max", Email: "max@example.com", Age: 25, IsActive: true}, eval.User)
	assert.True(t, eval.IsAdult)
	assert.True(t, eval.ValidEmail)
}

func TestEvaluateMutations(t *testing.T) {
	uc := New(nil)

	eval, err := uc.Evaluate(context.Background(), usecase.Params{
		"name":    "Max",
		"email":   "invalid-email",
		"age":     25.0,
		"new_age": 17.0,
		"active":  false,
	})
	require.NoError(t, err)
	assert.Equal(t, 17.0, eval.User.Age)
	assert.False(t, eval.User.IsActive)
	assert.False(t, eval.IsAdult)
	assert.False(t, eval.ValidEmail)
}

func TestEvaluateWithoutConstructionValidation(t *testing.T) {
	eval, err := New(nil).Evaluate(context.Background(), usecase.Params{"age": -3.0})
	require.NoError(t, err)
	assert.Equal(t, domain.UserSnapshot{Age: -3, IsActive: true}, eval.User)
}

func TestEvaluateKeepsFractionalAges(t *testing.T) {
	uc := New(nil)

	eval, err := uc.Evaluate(context.Background(), usecase.Params{"age": 17.9})
	require.NoError(t, err)
	assert.Equal(t, 17.9, eval.User.Age)
	assert.False(t, eval.IsAdult)

	eval, err = uc.Evaluate(context.Background(), usecase.Params{"age": 17.9, "new_age": 30.5})
	require.NoError(t, err)
	assert.Equal(t, 30.5, eval.User.Age)
	assert.True(t, eval.IsAdult)

	eval, err = uc.Evaluate(context.Background(), usecase.Params{"age": 1e10})
	require.NoError(t, err)
	assert.Equal(t, 1e10, eval.User.Age)
}

func TestEvaluateRejects(t *testing.T) {
	uc := New(nil)
	tests := []struct {
		name   string
		params usecase.Params
		want   *domain.Error
	}{
		{"negative new age", usecase.Params{"age": 25.0, "new_age": -5.0}, domain.ErrInvalidAge},
		{"text new age", usecase.Params{"age": 25.0, "new_age": "30"}, domain.ErrInvalidAge},
		{"text age", usecase.Params{"age": "25"}, domain.ErrInvalidAge},
		{"numeric name", usecase.Params{"name": 1.0}, domain.ErrNotString},
		{"numeric email", usecase.Params{"email": 1.0}, domain.ErrNotString},
		{"text active", usecase.Params{"active": "no"}, domain.ErrInvalidPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Evaluate(context.Background(), tt.params)
			assert.Same(t, tt.want, err)
		})
	}
}

func TestRegisteredCommand(t *testing.T) {
	d := usecase.NewDispatcher(New(nil))
	assert.Equal(t, []string{CommandEvaluate}, d.Commands())

	out, err := d.ExecuteCommand(context.Background(), CommandEvaluate, usecase.Params{"age": 18.0})
	require.NoError(t, err)
	eval, ok := out.(*Evaluation)
	require.True(t, ok)
	assert.True(t, eval.IsAdult)

	out, err = d.ExecuteCommand(context.Background(), CommandEvaluate, usecase.Params{"new_age": -1.0})
	assert.Same(t, domain.ErrInvalidAge, err)
	assert.Nil(t, out)
}
