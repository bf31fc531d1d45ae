// Package app is the composition root for the hrdemo command: it wires the
// employee factory, the notice board and the HR manager, and runs the demos.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sghaida/hrpatterns/config"
	"github.com/sghaida/hrpatterns/di"
	"github.com/sghaida/hrpatterns/employee"
	"github.com/sghaida/hrpatterns/hr"
	"github.com/sghaida/hrpatterns/notice"
	"go.opentelemetry.io/otel"
)

// Dependency keys recorded in the App service's Deps bag.
const (
	KeyFactory di.DependencyKey = "employee.factory"
	KeyBoard   di.DependencyKey = "notice.board"
	KeyHR      di.DependencyKey = "hr.manager"
)

// App holds the wired components. Fields are set by Build.
type App struct {
	Factory *employee.Factory
	Board   *notice.Board
	HR      *hr.Manager

	cfg     *config.Config
	out     io.Writer
	logger  *slog.Logger
	manager func() *hr.Manager
}

// Build wires an App writing demo output to out.
func Build(cfg *config.Config, out io.Writer, logger *slog.Logger) (*di.Service[App], error) {
	if logger == nil {
		logger = slog.Default()
	}
	accessor := hr.Scoped(out)

	svc := di.Init(func() *App {
		return &App{cfg: cfg, out: out, logger: logger, manager: accessor}
	})

	factory := di.Init(func() *employee.Factory {
		return employee.NewFactory(employee.WithLogger(logger))
	})
	board := di.Init(func() *notice.Board {
		return notice.NewBoard(
			notice.WithOutput(out),
			notice.WithLogger(logger),
			notice.WithTracerProvider(otel.GetTracerProvider()),
			notice.WithMeterProvider(otel.GetMeterProvider()),
		)
	})
	manager := di.Init(accessor)

	_, err := svc.WithAll(
		di.Injecting(KeyFactory, factory, func(a *App, f *employee.Factory) { a.Factory = f }),
		di.Injecting(KeyBoard, board, func(a *App, b *notice.Board) { a.Board = b }),
		di.Injecting(KeyHR, manager, func(a *App, m *hr.Manager) { a.HR = m }),
	)
	if err != nil {
		return nil, fmt.Errorf("app: wire: %w", err)
	}
	return svc, nil
}

// Run executes the configured demo, or all of them in factory, observer,
// singleton order.
func (a *App) Run(ctx context.Context) error {
	switch a.cfg.Demo.Name {
	case config.DemoFactory:
		return a.RunFactory()
	case config.DemoObserver:
		a.RunObserver(ctx)
		return nil
	case config.DemoSingleton:
		a.RunSingleton()
		return nil
	case config.DemoAll:
		if err := a.RunFactory(); err != nil {
			return err
		}
		a.RunObserver(ctx)
		a.RunSingleton()
		return nil
	default:
		return fmt.Errorf("%w %q", config.ErrUnknownDemo, a.cfg.Demo.Name)
	}
}

// RunFactory prints the roles of a full-time employee and an intern, or of
// every roster entry when a roster file is configured.
func (a *App) RunFactory() error {
	if a.cfg.Demo.Roster == "" {
		for _, tag := range []employee.Tag{employee.TagFullTime, employee.TagIntern} {
			fmt.Fprintln(a.out, a.Factory.MustCreate(tag).Role())
		}
		return nil
	}

	f, err := os.Open(a.cfg.Demo.Roster)
	if err != nil {
		return fmt.Errorf("app: open roster: %w", err)
	}
	defer f.Close()

	roster, err := employee.LoadRoster(f)
	if err != nil {
		return err
	}

	hired, skipped := a.Factory.Hire(roster)
	a.logger.Debug("app: roster hired", slog.Int("hired", len(hired)), slog.Int("skipped", len(skipped)))

	for _, h := range hired {
		fmt.Fprintf(a.out, "%s: %s\n", h.Name, h.Employee.Role())
	}
	for _, entry := range skipped {
		fmt.Fprintf(a.out, "%s: unknown type %q\n", entry.Name, string(entry.Type))
	}
	return nil
}

// RunObserver subscribes the configured employees and publishes one notice.
func (a *App) RunObserver(ctx context.Context) {
	for _, name := range a.cfg.Notice.Subscribers {
		a.Board.Subscribe(notice.NewEmployeeListener(name, a.out))
	}
	a.Board.Publish(ctx, a.cfg.Notice.Message)
}

// RunSingleton publishes the HR notice and reports whether two accessor calls
// returned the same manager.
func (a *App) RunSingleton() {
	again := a.manager()
	a.logger.Debug("app: hr manager",
		slog.String("manager", a.HR.ID()),
		slog.String("accessor", again.ID()))

	a.HR.PublishNotice(a.cfg.HR.Notice)
	fmt.Fprintf(a.out, "Same instance? %t\n", a.HR == again)
}
