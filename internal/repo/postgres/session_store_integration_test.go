//go:build integration

package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
	pgrepo "github.com/Gunvolt24/shop_discovery/internal/repo/postgres"
	"github.com/Gunvolt24/shop_discovery/internal/testutil"
)

// 1) Запись и чтение значения по ключу
func TestSessionStore_WriteAndRead_TC(t *testing.T) {
	t.Parallel()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()

	// миграции
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	// короткий контекст — на сами БД-операции
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	store := pgrepo.NewSessionStore(pool, "sess-"+testutil.UniqSuffix())

	entry := testutil.MakeCacheEntry(3)
	payload, err := json.Marshal(map[string]domain.CacheEntry{"eco bottle": entry})
	require.NoError(t, err)

	require.NoError(t, store.Write(ctx, "searchRecsV1", string(payload)))

	got, found, err := store.Read(ctx, "searchRecsV1")
	require.NoError(t, err)
	require.True(t, found)

	var decoded map[string]domain.CacheEntry
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	require.Len(t, decoded["eco bottle"].Items, 3)
}

// 2) Повторный Write — upsert, перезаписывает значение
func TestSessionStore_Upsert_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	store := pgrepo.NewSessionStore(pool, "sess-"+testutil.UniqSuffix())

	require.NoError(t, store.Write(ctx, "homeRecsV1", `{"home":{"items":[]}}`))
	require.NoError(t, store.Write(ctx, "homeRecsV1", `{"home":{"items":[{"id":"p1"}]}}`))

	got, found, err := store.Read(ctx, "homeRecsV1")
	require.NoError(t, err)
	require.True(t, found)
	require.Contains(t, got, "p1")
}

// 3) Изоляция сессий: ключи одной сессии не видны другой
func TestSessionStore_SessionIsolation_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	first := pgrepo.NewSessionStore(pool, "sess-a-"+testutil.UniqSuffix())
	second := pgrepo.NewSessionStore(pool, "sess-b-"+testutil.UniqSuffix())

	require.NoError(t, first.Write(ctx, "searchRecsV1", `{}`))

	_, found, err := second.Read(ctx, "searchRecsV1")
	require.NoError(t, err)
	require.False(t, found)
}
