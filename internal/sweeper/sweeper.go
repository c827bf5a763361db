// Package sweeper запускает периодические проходы ядра (закрытие лотов,
// запуск комнат, ретраи отмен) по модели fixed-delay: следующий запуск
// стартует через interval после ЗАВЕРШЕНИЯ предыдущего, а не по wall-clock
// расписанию. Медленный проход не порождает наслаивающихся запусков самого себя.
package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Job одна итерация периодической работы. Возвращает число обработанных
// сущностей; ошибки итерации логируются и не останавливают цикл.
type Job func(ctx context.Context) (int, error)

// Sweeper владеет собственным курсором выполнения (время последнего прохода)
// и не разделяет состояние с другими свиперами.
type Sweeper struct {
	name         string
	job          Job
	interval     time.Duration
	initialDelay time.Duration
	l            *logrus.Entry

	mu      sync.Mutex
	lastRun time.Time
}

func New(name string, job Job, interval, initialDelay time.Duration, l *logrus.Logger) *Sweeper {
	return &Sweeper{
		name:         name,
		job:          job,
		interval:     interval,
		initialDelay: initialDelay,
		l: l.WithFields(logrus.Fields{
			"component": "sweeper",
			"sweeper":   name,
		}),
	}
}

// Run крутит проходы до отмены контекста.
func (s *Sweeper) Run(ctx context.Context) {
	s.l.WithFields(logrus.Fields{
		"interval":     s.interval.String(),
		"initialDelay": s.initialDelay.String(),
	}).Info("Starting")

	if !s.sleep(ctx, s.initialDelay) {
		s.l.Info("Got stop signal, exiting...")
		return
	}

	for {
		s.runOnce(ctx)

		if !s.sleep(ctx, s.interval) {
			s.l.Info("Got stop signal, exiting...")
			return
		}
	}
}

// LastRun время начала последнего прохода (нулевое, если проходов еще не было).
func (s *Sweeper) LastRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun
}

func (s *Sweeper) runOnce(ctx context.Context) {
	s.mu.Lock()
	s.lastRun = time.Now()
	s.mu.Unlock()

	processed, err := s.job(ctx)
	if err != nil {
		s.l.WithError(err).Error("sweep iteration")
		return
	}
	if processed > 0 {
		s.l.WithField("processed", processed).Info("sweep done")
	}
}

// sleep ждет d или отмены контекста. Возвращает false при отмене.
func (s *Sweeper) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
