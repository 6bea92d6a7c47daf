package seats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxoffice/internal/shared/apperr"
	"boxoffice/pkg/cache"
)

var storeTestTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testSession() Session {
	return Session{
		ID:        "5b0d4d5e-4a43-4c8e-9f3c-0d3d8d1e7c11",
		EventID:   "1",
		Selection: Selection{}.SelectSection("floor").ToggleSeat("floor-1"),
		CreatedAt: storeTestTime,
		UpdatedAt: storeTestTime,
	}
}

func TestMemoryStore_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	session := testSession()
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Load(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.EventID, got.EventID)
	assert.Equal(t, []string{"floor-1"}, got.Selection.Seats())

	require.NoError(t, store.Delete(ctx, session.ID))
	_, err = store.Load(ctx, session.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, session.ID), apperr.ErrNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := storeTestTime
	store := newMemoryStore(15*time.Minute, func() time.Time { return now })

	session := testSession()
	require.NoError(t, store.Save(ctx, session))

	now = now.Add(14 * time.Minute)
	_, err := store.Load(ctx, session.ID)
	require.NoError(t, err)

	// saving refreshes the expiry
	require.NoError(t, store.Save(ctx, session))
	now = now.Add(14 * time.Minute)
	_, err = store.Load(ctx, session.ID)
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = store.Load(ctx, session.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	other := testSession()
	other.ID = "other"
	require.NoError(t, store.Save(ctx, other))
	assert.NotContains(t, store.entries, session.ID)
}

func TestRedisStore_Save(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(cache.NewService(client), 15*time.Minute)

	session := testSession()
	payload, err := json.Marshal(session)
	require.NoError(t, err)

	mock.ExpectSet("boxoffice:selections:"+session.ID, payload, 15*time.Minute).SetVal("OK")
	require.NoError(t, store.Save(context.Background(), session))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Load(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(cache.NewService(client), 15*time.Minute)

	session := testSession()
	payload, err := json.Marshal(session)
	require.NoError(t, err)

	mock.ExpectGet("boxoffice:selections:" + session.ID).SetVal(string(payload))
	got, err := store.Load(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, []string{"floor-1"}, got.Selection.Seats())
	assert.True(t, storeTestTime.Equal(got.CreatedAt))

	mock.ExpectGet("boxoffice:selections:gone").RedisNil()
	_, err = store.Load(context.Background(), "gone")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	mock.ExpectGet("boxoffice:selections:down").SetErr(errors.New("connection refused"))
	_, err = store.Load(context.Background(), "down")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)
}

func TestRedisStore_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(cache.NewService(client), time.Minute)

	mock.ExpectDel("boxoffice:selections:abc").SetVal(1)
	require.NoError(t, store.Delete(context.Background(), "abc"))

	mock.ExpectDel("boxoffice:selections:abc").SetVal(0)
	assert.ErrorIs(t, store.Delete(context.Background(), "abc"), apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
