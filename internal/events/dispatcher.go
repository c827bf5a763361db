package events

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultBufferSize = 256

//go:generate mockgen -source=dispatcher.go -destination=mocks/mocks.go -package=mocks

// Publisher принимает события ядра. Publish не должен блокировать
// вызывающую сторону: коммит транзакции расчетов не ждет доставки нотификаций.
type Publisher interface {
	Publish(event Event)
}

// Sink внешний потребитель событий (fan-out нотификаций, push-канал).
type Sink interface {
	Deliver(ctx context.Context, event Event) error
}

// Dispatcher буферизованная очередь событий между ядром и подписчиком.
type Dispatcher struct {
	ch   chan Event
	sink Sink
	l    *logrus.Entry
}

func NewDispatcher(sink Sink, l *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		ch:   make(chan Event, defaultBufferSize),
		sink: sink,
		l:    l.WithField("component", "events"),
	}
}

// Publish кладет событие в буфер. При переполнении буфера событие
// отбрасывается с warning: доставка нотификаций не имеет права тормозить расчеты.
func (d *Dispatcher) Publish(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	select {
	case d.ch <- event:
	default:
		d.l.WithField("kind", event.Kind).Warn("event buffer is full, dropping event")
	}
}

// Run доставляет события подписчику до отмены контекста.
func (d *Dispatcher) Run(ctx context.Context) {
	d.l.Info("Starting")
	for {
		select {
		case <-ctx.Done():
			d.l.Info("Got stop signal, exiting...")
			return
		case event := <-d.ch:
			if err := d.sink.Deliver(ctx, event); err != nil {
				d.l.WithError(err).WithField("kind", event.Kind).Error("deliver event")
			}
		}
	}
}

// LogSink подписчик по умолчанию: пишет события в лог. Используется пока
// реальный канал нотификаций не подключен.
type LogSink struct {
	l *logrus.Entry
}

func NewLogSink(l *logrus.Logger) *LogSink {
	return &LogSink{l: l.WithField("component", "events")}
}

func (s *LogSink) Deliver(_ context.Context, event Event) error {
	s.l.WithFields(logrus.Fields{
		"kind":    event.Kind,
		"payload": event.Payload,
	}).Info("event")
	return nil
}
