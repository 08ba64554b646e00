package filtergram

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/filtergram/filtergram/imageio"
	"github.com/filtergram/filtergram/pipeline"
	"github.com/filtergram/filtergram/pixel"
	"github.com/filtergram/filtergram/preset"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const Version = "0.3.1"

// Job single image filter task
type Job struct {
	Filter string
	Input  string
	Output string
}

// OutputPath resolves the destination path, deriving
// <input>-<filter><ext> next to the input when unset
func (j Job) OutputPath() string {
	if j.Output != "" {
		return j.Output
	}
	ext := filepath.Ext(j.Input)
	return strings.TrimSuffix(j.Input, ext) + "-" + j.Filter + ext
}

// Filtergram image filter engine
type Filtergram struct {
	Registry    *preset.Registry
	Executor    *pipeline.Executor
	Codec       *imageio.Codec
	Concurrency int
	Logger      *zap.Logger
	Debug       bool
}

// New create new Filtergram
func New(options ...Option) *Filtergram {
	app := &Filtergram{
		Logger:      zap.NewNop(),
		Concurrency: runtime.NumCPU(),
	}
	for _, option := range options {
		option(app)
	}
	if app.Concurrency < 1 {
		app.Concurrency = 1
	}
	if app.Registry == nil {
		app.Registry = preset.NewRegistry()
	}
	if app.Codec == nil {
		app.Codec = imageio.NewCodec()
	}
	if app.Executor == nil {
		app.Executor = pipeline.NewExecutor(
			pipeline.WithLogger(app.Logger),
			pipeline.WithDebug(app.Debug),
		)
	}
	if app.Debug {
		app.debugLog()
	}
	return app
}

// Names registered filter names in canonical order
func (app *Filtergram) Names() []string {
	return app.Registry.Names()
}

// Apply runs the named filter over img, returning a new image.
// The input image is left untouched.
func (app *Filtergram) Apply(img *pixel.Image, name string) (*pixel.Image, error) {
	spec, ok := app.Registry.Lookup(name)
	if !ok {
		return nil, ErrUnknownFilter
	}
	return app.Executor.Apply(img.Clone(), spec)
}

// Process runs a single job end to end. The output file is only
// written once the filtered image has fully encoded, so a failing
// job never leaves a partial file behind.
func (app *Filtergram) Process(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := app.Registry.Lookup(job.Filter); !ok {
		return ErrUnknownFilter
	}
	start := time.Now()
	blob := NewBlobFilePath(job.Input)
	buf, err := blob.ReadAll()
	if err != nil {
		return WrapError(err)
	}
	img, format, err := app.Codec.Decode(buf)
	if err != nil {
		return WrapError(err)
	}
	out, err := app.Apply(img, job.Filter)
	if err != nil {
		return WrapError(err)
	}
	output := job.OutputPath()
	data, err := app.Codec.Encode(out, filepath.Ext(output))
	if err != nil {
		return WrapError(err)
	}
	if err := os.WriteFile(output, data, 0666); err != nil {
		app.Logger.Warn("write", zap.String("output", output), zap.Error(err))
		return ErrEncode
	}
	app.Logger.Info("processed",
		zap.String("filter", job.Filter),
		zap.String("input", job.Input),
		zap.String("output", output),
		zap.String("format", format),
		zap.Int("width", out.Width),
		zap.Int("height", out.Height),
		zap.Duration("took", time.Since(start)))
	return nil
}

// Batch runs jobs concurrently up to Concurrency, returning the
// first error encountered. Remaining jobs are canceled on failure.
func (app *Filtergram) Batch(ctx context.Context, jobs []Job) error {
	if len(jobs) == 1 {
		return app.Process(ctx, jobs[0])
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(app.Concurrency)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			return app.Process(ctx, job)
		})
	}
	return g.Wait()
}

func (app *Filtergram) debugLog() {
	if !app.Debug {
		return
	}
	app.Logger.Debug("filtergram",
		zap.String("version", Version),
		zap.Int("concurrency", app.Concurrency),
		zap.Int("filters", app.Registry.Len()))
}
