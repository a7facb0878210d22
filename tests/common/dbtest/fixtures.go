//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// ResetDB empties the snapshot table. The table may not exist yet on a fresh database.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, `DO $$
BEGIN
	IF to_regclass('public.hotel_snapshots') IS NOT NULL THEN
		TRUNCATE hotel_snapshots;
	END IF;
END $$`)
	return err
}

// SnapshotPayload returns the raw jsonb stored under name.
func SnapshotPayload(t *testing.T, db DBLike, name string) []byte {
	t.Helper()

	var payload []byte
	err := db.QueryRow(context.Background(), "SELECT payload FROM hotel_snapshots WHERE name = $1", name).Scan(&payload)
	require.NoError(t, err)
	return payload
}

// ResetRedis removes every key under prefix.
func ResetRedis(client redis.Cmdable, prefix string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	keys, err := client.Keys(ctx, prefix+":*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}
