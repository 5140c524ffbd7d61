package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminctl/internal/backend"
	"adminctl/internal/domain"
)

type stubBackend struct {
	deadline time.Time
	ids      []string
	err      error
}

func (s *stubBackend) List(ctx context.Context) ([]domain.Row, error) {
	s.deadline, _ = ctx.Deadline()
	return []domain.Row{{ID: "1"}}, s.err
}

func (s *stubBackend) Delete(ctx context.Context, id string) (backend.Response, error) {
	return backend.Response{Success: true, Message: "Deleted"}, s.err
}

func (s *stubBackend) UpdateStatus(ctx context.Context, id, status string) (backend.Response, error) {
	return backend.Response{Success: true}, s.err
}

func (s *stubBackend) BulkAction(ctx context.Context, action string, ids []string) (backend.Response, error) {
	s.ids = ids
	return backend.Response{Success: true}, s.err
}

func TestLoadAppliesTimeout(t *testing.T) {
	b := &stubBackend{}
	msg := NewExecutor(b, time.Minute).ExecuteLoad()()

	loaded, ok := msg.(RowsLoadedMsg)
	require.True(t, ok)
	assert.NoError(t, loaded.Err)
	assert.Len(t, loaded.Rows, 1)
	assert.WithinDuration(t, time.Now().Add(time.Minute), b.deadline, 5*time.Second)
}

func TestLoadWithoutTimeoutHasNoDeadline(t *testing.T) {
	b := &stubBackend{}
	NewExecutor(b, 0).ExecuteLoad()()
	assert.True(t, b.deadline.IsZero())
}

func TestDeleteCarriesIDAndError(t *testing.T) {
	boom := errors.New("boom")
	msg := NewExecutor(&stubBackend{err: boom}, time.Second).ExecuteDelete("7")()

	res, ok := msg.(DeleteResultMsg)
	require.True(t, ok)
	assert.Equal(t, "7", res.ID)
	assert.ErrorIs(t, res.Err, boom)
}

func TestStatusCarriesPreviousStatus(t *testing.T) {
	msg := NewExecutor(&stubBackend{}, time.Second).ExecuteStatus("3", "inactive", "active")()

	res, ok := msg.(StatusResultMsg)
	require.True(t, ok)
	assert.Equal(t, StatusResultMsg{
		ID:       "3",
		Status:   "inactive",
		Previous: "active",
		Response: backend.Response{Success: true},
	}, res)
}

func TestBulkCopiesIDs(t *testing.T) {
	b := &stubBackend{}
	ids := []string{"1", "2"}
	cmd := NewExecutor(b, time.Second).ExecuteBulk("approve", ids)
	ids[0] = "changed"

	res, ok := cmd().(BulkResultMsg)
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, res.IDs)
	assert.Equal(t, []string{"1", "2"}, b.ids)
	assert.Equal(t, "approve", res.Action)
}
