package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"minibank/config"
	"minibank/internal/core"
	"minibank/internal/http"
	"minibank/internal/sqlite"
)

func main() {
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.InfoContext(ctx, "Starting application")

	directory, err := loadDirectory(ctx, cfg.Database)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load account book", "error", err)
		os.Exit(1)
	}

	presenter := &logPresenter{ctx: ctx, logger: logger}
	session := core.NewSession(directory, presenter)
	httpServer := http.NewServer(session, logger, cfg.HTTP)

	if err = httpServer.Start(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to start http server", "error", err)
		os.Exit(1)
	}

	<-stop

	logger.InfoContext(ctx, "Shutting down...")

	if err = httpServer.Stop(ctx); err != nil {
		logger.ErrorContext(ctx, "Error stopping HTTP server", "error", err)
	}

	logger.InfoContext(ctx, "Application shutdown complete")
}

// loadDirectory builds the in-memory account book, from the seed
// database when one is configured and from the built-in demo book
// otherwise. The database is closed again right after loading: all
// ledger state is in-memory from here on.
func loadDirectory(ctx context.Context, cfg sqlite.Config) (*core.Directory, error) {
	if cfg.DatabasePath == "" {
		return demoDirectory()
	}

	client, err := sqlite.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return sqlite.NewSeedStore(client.DB()).LoadDirectory(ctx)
}

// demoDirectory seeds the four demo customers.
func demoDirectory() (*core.Directory, error) {
	seeds := []struct {
		owner     string
		pin       int
		rate      float64
		movements []float64
	}{
		{"Jonas Schmedtmann", 1111, 1.2, []float64{200, 450, -400, 3000, -650, -130, 70, 1300}},
		{"Jessica Davis", 2222, 1.5, []float64{5000, 3400, -150, -790, -3210, -1000, 8500, -30}},
		{"Steven Thomas Williams", 3333, 0.7, []float64{200, -200, 340, -300, -20, 50, 400, -460}},
		{"Sarah Smith", 4444, 1, []float64{430, 1000, 700, 50, 90}},
	}

	accounts := make([]*core.Account, 0, len(seeds))
	for _, s := range seeds {
		acc, err := core.NewAccount(s.owner, s.pin, s.rate, s.movements)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return core.NewDirectory(accounts...)
}

// logPresenter satisfies core.Presenter for a headless deployment:
// render requests become log lines and the form-clearing hooks have
// nothing to clear.
type logPresenter struct {
	ctx    context.Context
	logger *slog.Logger
}

func (p *logPresenter) RenderAccount(model core.DisplayModel) {
	p.logger.InfoContext(p.ctx, "render statement",
		"handle", model.Handle,
		"movements", len(model.Movements),
		"balance", model.Balance,
	)
}

func (p *logPresenter) HideUI() {
	p.logger.InfoContext(p.ctx, "hide ui")
}

func (p *logPresenter) ClearLoginInputs()    {}
func (p *logPresenter) ClearTransferInputs() {}
func (p *logPresenter) ClearLoanInput()      {}
func (p *logPresenter) ClearCloseInputs()    {}
