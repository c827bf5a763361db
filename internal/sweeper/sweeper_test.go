package sweeper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeperRunsPeriodically(t *testing.T) {
	var runs atomic.Int32
	job := func(_ context.Context) (int, error) {
		runs.Add(1)
		return 1, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	s := New("test", job, 10*time.Millisecond, 0, logrus.New())
	s.Run(ctx)

	// Точное число проходов зависит от планировщика, важно что их больше одного
	// и курсор последнего прохода выставлен.
	assert.GreaterOrEqual(t, runs.Load(), int32(2))
	assert.False(t, s.LastRun().IsZero())
}

func TestSweeperInitialDelay(t *testing.T) {
	var runs atomic.Int32
	job := func(_ context.Context) (int, error) {
		runs.Add(1)
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	// Отложенный старт дольше жизни контекста: ни одного прохода.
	s := New("test", job, 10*time.Millisecond, time.Second, logrus.New())
	s.Run(ctx)

	assert.Equal(t, int32(0), runs.Load())
	assert.True(t, s.LastRun().IsZero())
}

// Ошибка итерации логируется и не останавливает цикл.
func TestSweeperSurvivesJobError(t *testing.T) {
	var runs atomic.Int32
	job := func(_ context.Context) (int, error) {
		runs.Add(1)
		return 0, errors.New("boom")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s := New("test", job, 10*time.Millisecond, 0, logrus.New())
	s.Run(ctx)

	require.GreaterOrEqual(t, runs.Load(), int32(2))
}
