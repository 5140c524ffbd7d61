package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventRowDeleted, func(e DomainEvent) { got <- e })

	b.Publish(RowDeletedEvent{Resource: "applications", ID: "7"})

	select {
	case e := <-got:
		require.Equal(t, RowDeletedEvent{Resource: "applications", ID: "7"}, e)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(nil)

	var mu sync.Mutex
	calls := 0
	unsub := b.Subscribe(EventRowsLoaded, func(DomainEvent) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	unsub()

	b.Publish(RowsLoadedEvent{Count: 3})
	time.Sleep(50 * time.Millisecond)
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, calls)
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New(nil)
	defer b.Close()

	done := make(chan struct{})
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { close(done) })

	b.Publish(ErrorEvent{Message: "x"})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("second handler did not run")
	}
}

func TestPublishAfterCloseIsIgnored(t *testing.T) {
	b := New(nil)
	b.Close()
	b.Close()

	assert.NotPanics(t, func() { b.Publish(RowsLoadedEvent{}) })
}

func TestAuditLogsEvents(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	b := New(nil)

	unsub := SubscribeAudit(b, zap.New(core))
	b.Publish(StatusChangedEvent{Resource: "opportunities", ID: "9", Status: "inactive", Reverted: true})

	require.Eventually(t, func() bool {
		return logs.FilterMessage(string(EventStatusChanged)).Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	unsub()
	b.Close()

	entry := logs.FilterMessage(string(EventStatusChanged)).All()[0]
	assert.Equal(t, "audit", entry.LoggerName, "the subscriber names its logger once")
	fields := entry.ContextMap()
	assert.Equal(t, "9", fields["id"])
	assert.Equal(t, "inactive", fields["status"])
	assert.Equal(t, true, fields["reverted"])
}
