package app

import (
	"github.com/bft-labs/byteservice/internal/domain"
	"github.com/bft-labs/byteservice/internal/ports"
)

// Option configures optional behavior of an Application.
type Option func(*options)

type options struct {
	logger ports.Logger
}

// WithLogger sets the logger. If not provided, a no-op logger is used.
func WithLogger(logger ports.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Application holds the services the zero check needs.
type Application struct {
	byteService    ports.ByteService
	booleanService BooleanService
	logger         ports.Logger
}

// New creates an Application around the given byte service.
// It panics with domain.ErrNilByteService if byteService is nil.
func New(byteService ports.ByteService, opts ...Option) *Application {
	if byteService == nil {
		panic(domain.ErrNilByteService)
	}

	o := options{logger: noopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = noopLogger{}
	}

	return &Application{
		byteService: byteService,
		logger:      o.logger,
	}
}

// IsZero classifies b through the injected byte service.
func (a *Application) IsZero(b domain.Byte) domain.Boolean {
	return a.byteService.IsZero(b)
}

// IsTrue unwraps v.
func (a *Application) IsTrue(v domain.Boolean) bool {
	return a.booleanService.IsTrue(v)
}

// Run classifies b and reports whether the result is true.
func (a *Application) Run(b domain.Byte) bool {
	isZero := a.IsZero(b)
	ok := a.IsTrue(isZero)
	a.logger.Debug("classified byte",
		ports.Stringer("input", b),
		ports.Stringer("is_zero", isZero),
		ports.Bool("ok", ok),
	)
	return ok
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...ports.Field) {}
func (noopLogger) Info(string, ...ports.Field)  {}
func (noopLogger) Warn(string, ...ports.Field)  {}
func (noopLogger) Error(string, ...ports.Field) {}
