package tests

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"das-foods/internal/domain"
	"das-foods/internal/mocks"
	"das-foods/internal/service"
	"das-foods/internal/storage"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	reads    atomic.Int32
	messages chan kafka.Message
	err      error
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	r.reads.Add(1)
	if r.err != nil {
		return kafka.Message{}, r.err
	}
	select {
	case msg := <-r.messages:
		return msg, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (r *fakeReader) Config() kafka.ReaderConfig {
	return kafka.ReaderConfig{Topic: "das-foods-events"}
}

func TestConsumer_ProcessEvent(t *testing.T) {
	ctx := context.Background()
	placedAt := time.Date(2024, 5, 1, 23, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))

	tests := []struct {
		name           string
		inputMessage   domain.KafkaMessage
		setupMockStore func(*mocks.PopularityStore)
	}{
		{
			name: "success",
			inputMessage: domain.KafkaMessage{
				Type:      domain.EventOrderPlaced,
				OrderID:   "ORD-1001",
				Lines:     []domain.EventLine{{MenuItemID: 1, Quantity: 2}, {MenuItemID: 4, Quantity: 1}, {MenuItemID: 8, Quantity: 0}},
				Timestamp: placedAt,
			},
			setupMockStore: func(mockStore *mocks.PopularityStore) {
				mockStore.On("RecordSale", ctx, "2024-05-01", 1, 2).Return(nil).Once()
				mockStore.On("RecordSale", ctx, "2024-05-01", 4, 1).Return(nil).Once()
			},
		},
		{
			name: "RecordSale error stops processing",
			inputMessage: domain.KafkaMessage{
				Type:      domain.EventOrderPlaced,
				OrderID:   "ORD-1002",
				Lines:     []domain.EventLine{{MenuItemID: 1, Quantity: 1}, {MenuItemID: 2, Quantity: 1}},
				Timestamp: placedAt,
			},
			setupMockStore: func(mockStore *mocks.PopularityStore) {
				mockStore.On("RecordSale", ctx, "2024-05-01", 1, 1).Return(errors.New("redis error")).Once()
			},
		},
		{
			name: "status change ignored",
			inputMessage: domain.KafkaMessage{
				Type:    domain.EventOrderStatusChanged,
				OrderID: "ORD-1001",
				Status:  string(domain.OrderReady),
			},
			setupMockStore: func(*mocks.PopularityStore) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewPopularityStore(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{
				Store: mockStore,
			}

			consumer.ProcessEvent(ctx, testCase.inputMessage)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestConsumer_StartBacksOffOnReadErrors(t *testing.T) {
	reader := &fakeReader{err: errors.New("broker unreachable")}
	consumer := service.NewConsumer(reader, mocks.NewPopularityStore(t))
	consumer.RetryDelay = 50 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		consumer.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after context cancellation")
	}
	assert.LessOrEqual(t, reader.reads.Load(), int32(4))
	assert.GreaterOrEqual(t, reader.reads.Load(), int32(1))
}

func TestConsumer_StartProcessesMessages(t *testing.T) {
	store := mocks.NewPopularityStore(t)
	reader := &fakeReader{messages: make(chan kafka.Message, 1)}
	consumer := service.NewConsumer(reader, store)

	recorded := make(chan struct{})
	store.On("RecordSale", mock.Anything, "2024-05-01", 6, 2).Run(func(mock.Arguments) {
		close(recorded)
	}).Return(nil).Once()

	payload, err := json.Marshal(domain.KafkaMessage{
		Type:      domain.EventOrderPlaced,
		OrderID:   "ORD-1001",
		Lines:     []domain.EventLine{{MenuItemID: 6, Quantity: 2}},
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	reader.messages <- kafka.Message{Key: []byte("ORD-1001"), Value: payload}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		consumer.Start(ctx)
		close(done)
	}()

	select {
	case <-recorded:
	case <-time.After(time.Second):
		t.Fatal("sale was not recorded")
	}
	cancel()
	<-done
}

func TestPopularityRecorder_PublishEvent(t *testing.T) {
	ctx := context.Background()
	placed := domain.KafkaMessage{
		Type:      domain.EventOrderPlaced,
		OrderID:   "ORD-1001",
		Lines:     []domain.EventLine{{MenuItemID: 1, Quantity: 2}},
		Timestamp: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	changed := domain.KafkaMessage{Type: domain.EventOrderStatusChanged, OrderID: "ORD-1001", Status: string(domain.OrderReady)}

	store := mocks.NewPopularityStore(t)
	next := mocks.NewEventPublisher(t)
	recorder := service.NewPopularityRecorder(next, store)

	store.On("RecordSale", ctx, "2024-05-01", 1, 2).Return(nil).Once()
	next.On("PublishEvent", ctx, placed).Return(nil).Once()
	next.On("PublishEvent", ctx, changed).Return(errors.New("log sink closed")).Once()

	assert.NoError(t, recorder.PublishEvent(ctx, placed))
	assert.EqualError(t, recorder.PublishEvent(ctx, changed), "log sink closed")

	assert.NoError(t, service.NewPopularityRecorder(nil, store).PublishEvent(ctx, changed))
}

func TestPopularityRecorder_FeedsAnalytics(t *testing.T) {
	_, client := setupMiniredis(t)
	popularity := storage.NewRedisPopularity(client)
	catalog := storage.NewMemoryCatalog(service.SeedMenu())
	cartStore := storage.NewMemoryCartStore()
	carts := service.NewCartService(cartStore, catalog)
	orders := service.NewOrderService(storage.NewMemoryOrderBook(), cartStore,
		service.NewPopularityRecorder(storage.LogPublisher{}, popularity), nil, "")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := carts.Add("s1", 6)
		require.NoError(t, err)
	}
	_, err := carts.Add("s1", 1)
	require.NoError(t, err)
	_, err = orders.Place(ctx, "s1", "Alice", domain.OrderTypeDineIn)
	require.NoError(t, err)

	items, err := service.NewAnalyticsService(popularity, catalog).Popular(ctx, service.PeriodAll, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 6, items[0].MenuItemID)
	assert.Equal(t, float64(3), items[0].Score)
	assert.Equal(t, 1, items[1].MenuItemID)
}
