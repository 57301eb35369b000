package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/fastygo/valueops/domain"
)

// Params carries the decoded request parameters of an operation.
type Params map[string]any

// Value returns the raw parameter and whether it was present.
func (p Params) Value(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

type CommandHandler func(ctx context.Context, params Params) (interface{}, error)
type QueryHandler func(ctx context.Context, params Params) (interface{}, error)

// Registrar is implemented by use cases that expose named operations.
type Registrar interface {
	Register(d *Dispatcher)
}

type Dispatcher struct {
	cmdHandlers map[string]CommandHandler
	qryHandlers map[string]QueryHandler
	mu          sync.RWMutex
}

func NewDispatcher(registrars ...Registrar) *Dispatcher {
	d := &Dispatcher{
		cmdHandlers: make(map[string]CommandHandler),
		qryHandlers: make(map[string]QueryHandler),
	}
	for _, r := range registrars {
		r.Register(d)
	}
	return d
}

func (d *Dispatcher) RegisterCommand(name string, handler CommandHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cmdHandlers[name] = handler
}

func (d *Dispatcher) RegisterQuery(name string, handler QueryHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.qryHandlers[name] = handler
}

func (d *Dispatcher) ExecuteCommand(ctx context.Context, name string, params Params) (interface{}, error) {
	d.mu.RLock()
	handler, ok := d.cmdHandlers[name]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("command %s: %w", name, domain.ErrUnknownOperation)
	}
	return handler(ctx, params)
}

func (d *Dispatcher) ExecuteQuery(ctx context.Context, name string, params Params) (interface{}, error) {
	d.mu.RLock()
	handler, ok := d.qryHandlers[name]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("query %s: %w", name, domain.ErrUnknownOperation)
	}
	return handler(ctx, params)
}

// Commands returns the registered command names, sorted.
func (d *Dispatcher) Commands() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return sortedKeys(d.cmdHandlers)
}

// Queries returns the registered query names, sorted.
func (d *Dispatcher) Queries() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return sortedKeys(d.qryHandlers)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
