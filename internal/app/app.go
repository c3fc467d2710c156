package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/reposearch/internal/cache"
	"github.com/five82/reposearch/internal/config"
	"github.com/five82/reposearch/internal/controller"
	"github.com/five82/reposearch/internal/github"
	"github.com/five82/reposearch/internal/logger"
	"github.com/five82/reposearch/internal/prefs"
	"github.com/five82/reposearch/internal/render"
	"github.com/five82/reposearch/internal/ui"
)

// Options configure the reposearch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/reposearch/prefs.toml
	LogLevel   string // overrides log_level from the config when set
}

// OnceOptions configure a single non-interactive search.
type OnceOptions struct {
	Options
	Query  string
	Format string    // text, html or json
	Out    io.Writer // rendered output; defaults to stdout
	ErrOut io.Writer // warnings; defaults to stderr
}

// Run boots the interactive TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	// The TUI owns the terminal; without a usable log file, logs are dropped.
	var logOut io.Writer
	if f, err := logger.OpenFile(cfg.LogFile); err == nil && f != nil {
		defer f.Close()
		logOut = f
	}
	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: "json", Writer: logOut})
	log.Info().Str("base_url", cfg.BaseURL).Dur("timeout", cfg.Timeout).Msg("starting")

	client, err := newClient(cfg, log)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	return ui.Run(ui.Options{
		Context:    ctx,
		Searcher:   client,
		Cache:      cache.New(),
		Logger:     logger.Named(log, "ui"),
		ThemeName:  userPrefs.ThemeOr(cfg.Theme),
		PrefsPath:  opts.PrefsPath,
		ShowErrors: cfg.ShowErrors,
	})
}

// SearchOnce runs one search and writes the rendered list.
func SearchOnce(ctx context.Context, opts OnceOptions) error {
	_, rec, err := searchOnce(ctx, opts)
	if err != nil {
		return err
	}
	return writeLine(opts.Out, rec.Results)
}

// ShowOnce runs one search and writes the details of record index.
func ShowOnce(ctx context.Context, opts OnceOptions, index int) error {
	ctrl, rec, err := searchOnce(ctx, opts)
	if err != nil {
		return err
	}
	if !ctrl.SelectRecord(index) {
		return fmt.Errorf("index %d out of range: search returned %d results", index, ctrl.State().Current.Len())
	}
	return writeLine(opts.Out, rec.Overlay)
}

// searchOnce drives the controller through one submit-fetch-complete cycle
// against an in-memory surface.
func searchOnce(ctx context.Context, opts OnceOptions) (*controller.Controller, *controller.Recorder, error) {
	cfg, err := loadConfig(opts.Options)
	if err != nil {
		return nil, nil, err
	}

	errOut := opts.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}
	level := cfg.LogLevel
	if logger.ParseLevel(level) < zerolog.WarnLevel {
		level = "warn"
	}
	log := logger.New(logger.Options{Level: level, Writer: errOut, NoColor: true})

	renderer, err := render.ForFormat(opts.Format)
	if err != nil {
		return nil, nil, err
	}
	client, err := newClient(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	rec := &controller.Recorder{}
	ctrl, err := controller.New(controller.Deps{
		Searcher: client,
		Renderer: renderer,
		Surface:  rec,
		Logger:   logger.Named(log, "controller"),
	})
	if err != nil {
		return nil, nil, err
	}

	if ctrl.SubmitQuery(opts.Query) {
		resp, err := ctrl.Fetch(ctx, opts.Query)
		if err != nil {
			ctrl.OnSearchFailed(opts.Query, err)
			return nil, nil, err
		}
		ctrl.OnSearchComplete(opts.Query, resp)
	}
	return ctrl, rec, nil
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if lvl := strings.TrimSpace(opts.LogLevel); lvl != "" {
		cfg.LogLevel = strings.ToLower(lvl)
		if err := cfg.Validate(); err != nil {
			return config.Config{}, fmt.Errorf("log level flag: %w", err)
		}
	}
	return cfg, nil
}

func newClient(cfg config.Config, log zerolog.Logger) (*github.Client, error) {
	opts := append(cfg.ClientOptions(), github.WithLogger(logger.Named(log, "github")))
	client, err := github.NewClient(cfg.BaseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("init search client: %w", err)
	}
	log.Debug().Str("base_url", client.BaseURL()).Dur("timeout", cfg.Timeout).Msg("search client ready")
	return client, nil
}

func writeLine(w io.Writer, s string) error {
	if w == nil {
		w = os.Stdout
	}
	if _, err := io.WriteString(w, s+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
