package filtergram

import (
	"github.com/filtergram/filtergram/imageio"
	"github.com/filtergram/filtergram/pipeline"
	"github.com/filtergram/filtergram/preset"
	"go.uber.org/zap"
)

type Option func(o *Filtergram)

func WithLogger(logger *zap.Logger) Option {
	return func(o *Filtergram) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

func WithRegistry(registry *preset.Registry) Option {
	return func(o *Filtergram) {
		o.Registry = registry
	}
}

func WithExecutor(executor *pipeline.Executor) Option {
	return func(o *Filtergram) {
		o.Executor = executor
	}
}

func WithCodec(codec *imageio.Codec) Option {
	return func(o *Filtergram) {
		o.Codec = codec
	}
}

func WithConcurrency(n int) Option {
	return func(o *Filtergram) {
		if n > 0 {
			o.Concurrency = n
		}
	}
}

func WithDebug(debug bool) Option {
	return func(o *Filtergram) {
		o.Debug = debug
	}
}
