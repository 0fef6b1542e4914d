package app

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"taxcalc/internal/console"
	"taxcalc/internal/domain"
	"taxcalc/internal/logging"
	"taxcalc/internal/services/calculator"
	historysvc "taxcalc/internal/services/history"
	"taxcalc/internal/store"
	"taxcalc/internal/tax"
)

// Wire bundles all stores, services and collaborators for the CLI.
type Wire struct {
	Engine     *tax.Engine
	History    *historysvc.Service // nil unless Config.History is set
	Calculator *calculator.Service
	Input      *console.Input
	Output     *console.Output
	Log        *zap.Logger
}

// IO is where the console collaborators and diagnostics read and write.
type IO struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// StdIO returns the process's standard streams.
func StdIO() IO { return IO{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr} }

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, streams IO) (*Wire, error) {
	engine, log, err := NewEngine(cfg, streams.ErrOut)
	if err != nil {
		return nil, err
	}

	out := console.NewOutput(streams.Out)
	in := console.NewInput(streams.In, streams.Out)
	opts := []calculator.Option{calculator.WithLogger(log)}

	var hist *historysvc.Service
	if cfg.History {
		if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
			return nil, err
		}
		hist = historysvc.New(historyStore(cfg))
		opts = append(opts, calculator.WithRecorder(hist))
	}

	return &Wire{
		Engine:     engine,
		History:    hist,
		Calculator: calculator.New(engine, in, out, opts...),
		Input:      in,
		Output:     out,
		Log:        log,
	}, nil
}

// NewEngine builds only the logger and the tax engine, with any extra
// bracket tables from cfg merged in. Console and history settings are ignored.
func NewEngine(cfg Config, errOut io.Writer) (*tax.Engine, *zap.Logger, error) {
	log, err := logging.New(errOut, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	schedule := tax.DefaultSchedule()
	if cfg.BracketsFile != "" {
		if schedule, err = tax.LoadSchedule(schedule, cfg.BracketsFile); err != nil {
			return nil, nil, fmt.Errorf("loading bracket tables: %w", err)
		}
		log.Info("loaded bracket tables", zap.String("file", cfg.BracketsFile))
	}
	return tax.New(schedule), log, nil
}

// OpenHistory returns the history service for cfg regardless of
// Config.History, for commands that only read it.
func OpenHistory(cfg Config) *historysvc.Service {
	return historysvc.New(historyStore(cfg))
}

func historyStore(cfg Config) domain.HistoryStore {
	if cfg.Passphrase != "" {
		return store.NewEncryptedHistoryFileStore(cfg.Home, cfg.Passphrase)
	}
	return store.NewHistoryFileStore(cfg.Home)
}
