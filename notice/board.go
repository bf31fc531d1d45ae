// Package notice implements an HR notice board: listeners subscribe, and every
// published message is delivered to each of them.
//
// Delivery is synchronous and runs on the publisher's goroutine, in the order
// listeners subscribed. A Board is meant to be set up and used from a single
// goroutine; it does no locking.
package notice

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/sghaida/hrpatterns/notice"

// Board broadcasts messages to its listeners.
type Board struct {
	listeners []Listener
	out       io.Writer
	logger    *slog.Logger

	tracer    trace.Tracer
	delivered metric.Int64Counter
}

// Option configures a Board.
type Option func(*Board)

// WithOutput sets where the board writes its own "HR: ..." line. Default os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(b *Board) {
		if w != nil {
			b.out = w
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithTracerProvider makes Publish record a "notice.publish" span.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(b *Board) {
		if tp != nil {
			b.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// WithMeterProvider makes Publish count deliveries in
// "hrpatterns.notice.delivered".
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(b *Board) {
		if mp != nil {
			b.delivered = newDeliveredCounter(mp)
		}
	}
}

// NewBoard returns an empty board.
func NewBoard(opts ...Option) *Board {
	b := &Board{
		out:       os.Stdout,
		logger:    slog.Default(),
		tracer:    tracenoop.NewTracerProvider().Tracer(instrumentationName),
		delivered: newDeliveredCounter(metricnoop.NewMeterProvider()),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func newDeliveredCounter(mp metric.MeterProvider) metric.Int64Counter {
	c, err := mp.Meter(instrumentationName).Int64Counter(
		"hrpatterns.notice.delivered",
		metric.WithDescription("Messages delivered to notice board listeners"),
	)
	if err != nil {
		// Int64Counter only fails on an invalid instrument name.
		c, _ = metricnoop.NewMeterProvider().Meter(instrumentationName).Int64Counter("hrpatterns.notice.delivered")
	}
	return c
}

// Subscribe appends l to the board. Subscribing the same listener twice makes
// it receive every message twice. A nil listener is ignored.
func (b *Board) Subscribe(l Listener) {
	if l == nil {
		return
	}
	b.listeners = append(b.listeners, l)
	b.logger.Debug("notice: subscribed", slog.Int("listeners", len(b.listeners)))
}

// Publish writes "HR: <message>" to the board's output and then calls Receive
// on every listener in subscription order.
//
// A panicking listener is not recovered; listeners after it are not notified.
func (b *Board) Publish(ctx context.Context, message string) {
	ctx, span := b.tracer.Start(ctx, "notice.publish",
		trace.WithAttributes(attribute.Int("notice.listeners", len(b.listeners))))
	defer span.End()

	fmt.Fprintf(b.out, "HR: %s\n", message)
	b.logger.DebugContext(ctx, "notice: publishing", slog.Int("listeners", len(b.listeners)))

	for _, l := range b.listeners {
		l.Receive(message)
		b.delivered.Add(ctx, 1)
	}
}

// Listeners returns a copy of the subscribed listeners in subscription order.
func (b *Board) Listeners() []Listener {
	out := make([]Listener, len(b.listeners))
	copy(out, b.listeners)
	return out
}

// Len reports how many subscriptions the board holds.
func (b *Board) Len() int { return len(b.listeners) }
