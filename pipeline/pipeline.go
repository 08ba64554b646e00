// Package pipeline executes a preset's operations against a working image,
// in the exact order the preset declares.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/filtergram/filtergram/blend"
	"github.com/filtergram/filtergram/colormath"
	"github.com/filtergram/filtergram/overlay"
	"github.com/filtergram/filtergram/pixel"
	"github.com/filtergram/filtergram/preset"
)

// Executor applies presets. The zero value is usable; a logger enables
// per-operation debug output.
type Executor struct {
	Logger *zap.Logger
	Debug  bool
}

// Option configures an Executor.
type Option func(e *Executor)

// WithLogger sets the executor logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Executor) {
		e.Logger = logger
	}
}

// WithDebug enables per-operation debug logging.
func WithDebug(debug bool) Option {
	return func(e *Executor) {
		e.Debug = debug
	}
}

// NewExecutor creates an Executor.
func NewExecutor(options ...Option) *Executor {
	e := &Executor{Logger: zap.NewNop()}
	for _, option := range options {
		option(e)
	}
	return e
}

// Apply runs every operation of spec against img in declared order and
// returns the final working image. Adjustments mutate the working buffer in
// place; overlay operations build a transient overlay at the working
// dimensions, composite it, and replace the working buffer with the result.
func (e *Executor) Apply(img *pixel.Image, spec *preset.Spec) (*pixel.Image, error) {
	working := img
	for i, op := range spec.Ops {
		switch op := op.(type) {
		case preset.Adjust:
			if e.Debug {
				e.Logger.Debug("adjust",
					zap.String("preset", spec.Name),
					zap.Int("step", i),
					zap.String("kind", op.Kind.String()),
					zap.Float64("amount", op.Amount),
				)
			}
			applyAdjust(working, op)
		case preset.Overlay:
			if e.Debug {
				e.Logger.Debug("overlay",
					zap.String("preset", spec.Name),
					zap.Int("step", i),
					zap.String("mode", op.Mode.String()),
					zap.Float64("opacity", op.Opacity),
				)
			}
			over := overlay.Build(working.Width, working.Height, op.Fill, op.Opacity)
			out, err := blend.Composite(working, over, op.Mode)
			if err != nil {
				return nil, err
			}
			working = out
		}
	}
	return working, nil
}

// applyAdjust translates a CSS-unit adjustment into the matching colormath
// routine.
func applyAdjust(img *pixel.Image, op preset.Adjust) {
	switch op.Kind {
	case preset.Brightness:
		colormath.Modulate(img, op.Amount*100, 100, 100)
	case preset.Saturate:
		colormath.Modulate(img, 100, op.Amount*100, 100)
	case preset.HueRotate:
		// hue-rotate(d) maps to a modulate hue percent of 100 + d/1.8
		colormath.Modulate(img, 100, 100, 100+op.Amount/1.8)
	case preset.Contrast:
		black, white := colormath.ContrastLevels(op.Amount)
		if op.Amount < 1 {
			// contrast below 1 compresses toward midtone
			colormath.InverseLevel(img, black, white)
		} else {
			colormath.Level(img, black, white)
		}
	case preset.Sepia:
		colormath.ApplyMatrix(img, colormath.SepiaMatrix(op.Amount))
	case preset.Grayscale:
		colormath.ApplyMatrix(img, colormath.GrayscaleMatrix(op.Amount))
	}
}
