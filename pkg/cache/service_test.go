package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestServiceSetAndGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)
	ctx := context.Background()

	mock.ExpectSet("k", []byte(`{"name":"floor","count":2}`), time.Minute).SetVal("OK")
	require.NoError(t, svc.Set(ctx, "k", item{Name: "floor", Count: 2}, time.Minute))

	mock.ExpectGet("k").SetVal(`{"name":"floor","count":2}`)
	var got item
	require.NoError(t, svc.Get(ctx, "k", &got))
	assert.Equal(t, item{Name: "floor", Count: 2}, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceGet_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)

	mock.ExpectGet("missing").RedisNil()
	var got item
	err := svc.Get(context.Background(), "missing", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestServiceGet_Error(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)

	mock.ExpectGet("k").SetErr(errors.New("connection refused"))
	var got item
	err := svc.Get(context.Background(), "k", &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestServiceDeleteAndPing(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)
	ctx := context.Background()

	mock.ExpectDel("k").SetVal(1)
	assert.NoError(t, svc.Delete(ctx, "k"))

	mock.ExpectDel("k").SetVal(0)
	assert.ErrorIs(t, svc.Delete(ctx, "k"), ErrCacheMiss)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, svc.Ping(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}
