package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/groph-auction/internal/events"
	"github.com/fsdevblog/groph-auction/internal/events/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDelivers(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	sink := mocks.NewMockSink(mockCtrl)
	delivered := make(chan events.Event, 1)
	sink.EXPECT().
		Deliver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event events.Event) error {
			delivered <- event
			return nil
		})

	d := events.NewDispatcher(sink, logrus.New())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	d.Publish(events.Event{
		Kind:    events.KindPriceChanged,
		Payload: events.PriceChanged{ItemID: 1, NewPrice: 15000},
	})

	select {
	case event := <-delivered:
		require.Equal(t, events.KindPriceChanged, event.Kind)
		// OccurredAt проставляется при публикации, если не задан.
		require.False(t, event.OccurredAt.IsZero())
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

// Publish не блокирует даже без работающего потребителя: при переполнении
// буфера события отбрасываются.
func TestDispatcherPublishNeverBlocks(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	d := events.NewDispatcher(mocks.NewMockSink(mockCtrl), logrus.New())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			d.Publish(events.Event{Kind: events.KindPriceChanged})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked")
	}
}
