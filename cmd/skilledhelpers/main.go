package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/skilledhelpers"
	"github.com/fwojciec/skilledhelpers/bolt"
	"github.com/fwojciec/skilledhelpers/config"
	"github.com/fwojciec/skilledhelpers/fs"
	"github.com/fwojciec/skilledhelpers/gemini"
	"github.com/fwojciec/skilledhelpers/helper"
	shredis "github.com/fwojciec/skilledhelpers/redis"
	shslog "github.com/fwojciec/skilledhelpers/slog"
	"github.com/fwojciec/skilledhelpers/sqlite"
	"github.com/fwojciec/skilledhelpers/store"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config overrides loading configuration from the environment.
	Config *config.Config

	// Diagnoser overrides the Gemini diagnoser, for end-to-end testing.
	Diagnoser skilledhelpers.Diagnoser

	// Store is the application state once Run has opened storage.
	Store *store.Store

	closers []func() error
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close releases storage handles in reverse order of opening.
func (m *Main) Close() error {
	var first error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	m.closers = nil
	return first
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("skilledhelpers"),
		kong.Description(skilledhelpers.AppName+": "+skilledhelpers.Tagline),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'skilledhelpers --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := m.Config
	if cfg == nil {
		if cfg, err = config.Load(); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", skilledhelpers.ErrorMessage(err))
			return err
		}
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cmd == "categories" {
		return kongCtx.Run(deps)
	}

	storage, err := m.openStorage(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: check the %s storage settings (SKILLEDHELPERS_STORAGE)\n", cfg.Storage)
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage, err)
	}
	defer m.Close()

	m.Store = store.New(shslog.NewLoggingStorage(storage, deps.Logger))
	deps.Workers = m.Store
	deps.Products = m.Store
	deps.Resetter = m.Store

	// Reset must work on storage that no longer loads.
	if cmd != "reset" {
		if err := m.Store.Load(ctx); err != nil {
			if skilledhelpers.ErrorCode(err) == skilledhelpers.ECORRUPT {
				fmt.Fprintf(stderr, "error: %s\n", skilledhelpers.ErrorMessage(err))
				fmt.Fprintln(stderr, "Hint: run 'skilledhelpers reset --force' to restore the seed listings")
			}
			return err
		}
	}

	if cmd == "diagnose" {
		diagnoser := m.Diagnoser
		if diagnoser == nil {
			diagnoser = newGeminiDiagnoser(ctx, cfg, deps.Logger)
		}
		deps.Helper = helper.NewSession(shslog.NewLoggingDiagnoser(diagnoser, deps.Logger), deps.Logger)
		defer deps.Helper.Close()
	}

	return kongCtx.Run(deps)
}

// openStorage opens the configured backend and registers its closer.
func (m *Main) openStorage(ctx context.Context, cfg *config.Config) (skilledhelpers.Storage, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		if err := ensureParentDir(cfg.DBPath); err != nil {
			return nil, err
		}
		db := sqlite.NewDB(cfg.DBPath)
		if err := db.Open(); err != nil {
			return nil, err
		}
		m.closers = append(m.closers, db.Close)
		return sqlite.NewStorage(db), nil
	case config.StorageBolt:
		if err := ensureParentDir(cfg.DBPath); err != nil {
			return nil, err
		}
		s, err := bolt.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		m.closers = append(m.closers, s.Close)
		return s, nil
	case config.StorageRedis:
		client, err := shredis.NewClient(ctx, shredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		m.closers = append(m.closers, client.Close)
		return shredis.NewStorage(client, shredis.DefaultPrefix), nil
	case config.StorageFS:
		return fs.NewFileStorage(cfg.DataDir), nil
	}
	return nil, skilledhelpers.Errorf(skilledhelpers.EINVALID, "unknown storage %q", cfg.Storage)
}

// newGeminiDiagnoser builds the Gemini diagnoser. A missing or unusable
// API key is logged and yields a diagnoser that never sends a request.
func newGeminiDiagnoser(ctx context.Context, cfg *config.Config, logger *slog.Logger) *gemini.Diagnoser {
	opts := []gemini.Option{gemini.WithModel(cfg.Model)}
	if cfg.RequestsPerMinute > 0 {
		opts = append(opts, gemini.WithLimiter(rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)))
	}

	if cfg.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; diagnosis is disabled. Get an API key at https://aistudio.google.com/apikey")
		return gemini.NewDiagnoser(nil, opts...)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Warn("failed to create Gemini client; diagnosis is disabled", "err", err)
		return gemini.NewDiagnoser(nil, opts...)
	}
	return gemini.NewDiagnoser(client, opts...)
}

func ensureParentDir(path string) error {
	if path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}
