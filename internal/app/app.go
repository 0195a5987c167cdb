package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/prefabgo/internal/ctxlog"
	"github.com/specialistvlad/prefabgo/internal/embedded"
	"github.com/specialistvlad/prefabgo/internal/encode"
	"github.com/specialistvlad/prefabgo/internal/manifest"
	"github.com/specialistvlad/prefabgo/internal/parser"
	"github.com/specialistvlad/prefabgo/internal/registry"
	"github.com/specialistvlad/prefabgo/internal/resourcepath"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. Without modules, the core embedded types are
// registered.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = embedded.Core
	}
	reg := registry.New(modules...)
	logger.Debug("Embedded types registered.", "kinds", reg.Kinds())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// settings is the configuration in effect for one run, after the manifest
// (if any) has filled in what the flags left unset.
type settings struct {
	format     encode.Format
	strict     bool
	namespaces []string
}

func (a *App) settings(m *manifest.Manifest) (settings, error) {
	s := settings{format: encode.YAML, namespaces: a.config.Namespaces}
	if m != nil {
		if m.Output != nil && m.Output.Format != "" {
			f, err := encode.ParseFormat(m.Output.Format)
			if err != nil {
				return s, fmt.Errorf("manifest output: %w", err)
			}
			s.format = f
		}
		if m.Strict != nil {
			s.strict = *m.Strict
		}
		if len(s.namespaces) == 0 {
			s.namespaces = m.Namespaces
		}
	}
	if a.config.Format != "" {
		s.format = encode.Format(a.config.Format)
	}
	if a.config.Strict != nil {
		s.strict = *a.config.Strict
	}
	return s, nil
}

func (s settings) parser(reg *registry.Registry) *parser.Parser {
	return parser.New(reg, parser.Options{Strict: s.strict})
}

func (s settings) validator() resourcepath.Validator {
	return resourcepath.NewValidator(s.namespaces...)
}

func (a *App) write(s settings, v any) error {
	return encode.Write(a.outW, s.format, v)
}
