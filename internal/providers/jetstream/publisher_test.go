package jetstream_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/logger"
	"github.com/feral-file/ff-emoji-ledger/internal/mocks"
	ledgerjs "github.com/feral-file/ff-emoji-ledger/internal/providers/jetstream"
)

type testPublisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
	json   *mocks.MockJSON
}

func setupTestPublisher(t *testing.T) *testPublisherMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)
	return &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
		json:   mocks.NewMockJSON(ctrl),
	}
}

var testConfig = ledgerjs.Config{
	URL:               "nats://localhost:4222",
	StreamName:        "LEDGER",
	MaxReconnects:     3,
	ReconnectWait:     time.Second,
	ConnectionName:    "emoji-ledger-test",
	MaxPublishRetries: 1,
}

var testEvent = &domain.LedgerEvent{
	ID:     "01JAAAAAAAAAAAAAAAAAAAAAAA",
	Type:   domain.LedgerEventTradeSettled,
	UserID: 1,
}

func expectConnect(m *testPublisherMocks) {
	m.natsJS.EXPECT().
		Connect(testConfig.URL, gomock.Any()).
		Return(m.conn, m.js, nil)
	m.js.EXPECT().
		EnsureStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg jetstream.StreamConfig) error {
			if cfg.Name != "LEDGER" || len(cfg.Subjects) != 1 || cfg.Subjects[0] != "ledger.>" {
				return errors.New("unexpected stream config")
			}
			return nil
		})
}

func TestNewPublisher_ConnectError(t *testing.T) {
	m := setupTestPublisher(t)
	defer m.ctrl.Finish()

	m.natsJS.EXPECT().
		Connect(testConfig.URL, gomock.Any()).
		Return(nil, nil, errors.New("connection refused"))

	_, err := ledgerjs.NewPublisher(context.Background(), testConfig, m.natsJS, m.json)
	assert.ErrorContains(t, err, "failed to connect to NATS")
}

func TestNewPublisher_StreamError(t *testing.T) {
	m := setupTestPublisher(t)
	defer m.ctrl.Finish()

	m.natsJS.EXPECT().
		Connect(testConfig.URL, gomock.Any()).
		Return(m.conn, m.js, nil)
	m.js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(errors.New("no permission"))
	m.conn.EXPECT().Close()

	_, err := ledgerjs.NewPublisher(context.Background(), testConfig, m.natsJS, m.json)
	assert.ErrorContains(t, err, "failed to ensure stream LEDGER")
}

func TestPublishEvent(t *testing.T) {
	m := setupTestPublisher(t)
	defer m.ctrl.Finish()

	expectConnect(m)
	p, err := ledgerjs.NewPublisher(context.Background(), testConfig, m.natsJS, m.json)
	require.NoError(t, err)

	payload := []byte(`{"id":"x"}`)
	m.json.EXPECT().Marshal(testEvent).Return(payload, nil)
	m.js.EXPECT().
		Publish(gomock.Any(), "ledger.trade.settled", payload, gomock.Any()).
		Return(&jetstream.PubAck{Stream: "LEDGER", Sequence: 1}, nil)

	require.NoError(t, p.PublishEvent(context.Background(), testEvent))
}

func TestPublishEvent_RetriesThenSucceeds(t *testing.T) {
	m := setupTestPublisher(t)
	defer m.ctrl.Finish()

	expectConnect(m)
	p, err := ledgerjs.NewPublisher(context.Background(), testConfig, m.natsJS, m.json)
	require.NoError(t, err)

	m.json.EXPECT().Marshal(testEvent).Return([]byte("{}"), nil)
	gomock.InOrder(
		m.js.EXPECT().
			Publish(gomock.Any(), "ledger.trade.settled", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout")),
		m.js.EXPECT().
			Publish(gomock.Any(), "ledger.trade.settled", gomock.Any(), gomock.Any()).
			Return(&jetstream.PubAck{Stream: "LEDGER", Sequence: 2, Duplicate: true}, nil),
	)

	require.NoError(t, p.PublishEvent(context.Background(), testEvent))
}

func TestPublishEvent_GivesUp(t *testing.T) {
	m := setupTestPublisher(t)
	defer m.ctrl.Finish()

	cfg := testConfig
	cfg.MaxPublishRetries = 0

	m.natsJS.EXPECT().Connect(cfg.URL, gomock.Any()).Return(m.conn, m.js, nil)
	m.js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)
	p, err := ledgerjs.NewPublisher(context.Background(), cfg, m.natsJS, m.json)
	require.NoError(t, err)

	m.json.EXPECT().Marshal(testEvent).Return([]byte("{}"), nil)
	m.js.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no responders"))

	assert.ErrorContains(t, p.PublishEvent(context.Background(), testEvent), "failed to publish event")
}

func TestPublishEvent_MarshalError(t *testing.T) {
	m := setupTestPublisher(t)
	defer m.ctrl.Finish()

	expectConnect(m)
	p, err := ledgerjs.NewPublisher(context.Background(), testConfig, m.natsJS, m.json)
	require.NoError(t, err)

	m.json.EXPECT().Marshal(testEvent).Return(nil, errors.New("bad value"))

	assert.ErrorContains(t, p.PublishEvent(context.Background(), testEvent), "failed to marshal event")
}

func TestBuildSubject(t *testing.T) {
	tests := []struct {
		eventType domain.LedgerEventType
		expected  string
	}{
		{domain.LedgerEventEmojiGranted, "ledger.emoji.granted"},
		{domain.LedgerEventTradeRecycled, "ledger.trade.recycled"},
		{domain.LedgerEventConfirmationTimedOut, "ledger.confirmation.timed_out"},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			assert.Equal(t, tt.expected, ledgerjs.BuildSubject(&domain.LedgerEvent{Type: tt.eventType}))
		})
	}
}

func TestClose(t *testing.T) {
	m := setupTestPublisher(t)
	defer m.ctrl.Finish()

	expectConnect(m)
	p, err := ledgerjs.NewPublisher(context.Background(), testConfig, m.natsJS, m.json)
	require.NoError(t, err)

	m.conn.EXPECT().Drain().Return(errors.New("already closed"))
	m.conn.EXPECT().Close()

	p.Close()
}
