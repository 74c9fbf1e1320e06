// Package export_cache_repository stages generated expense exports in Redis
// so repeated downloads inside the TTL window skip regeneration. Keys are
// scoped per user, calendar day and format; the day in the key keeps a stale
// blob from outliving the filename it was generated for.
package export_cache_repository

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TTL is how long a staged export stays valid.
var TTL = 10 * time.Minute

func Key(userId primitive.ObjectID, day time.Time, format string) string {
	return fmt.Sprintf("export:%s:%s:%s", userId.Hex(), day.Format("2006-01-02"), format)
}

// Save stages an export blob under the key. Binary formats survive the trip
// through Redis as base64.
func Save(redisURL string, key string, data []byte) error {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	encoded := base64.StdEncoding.EncodeToString(data)

	if err := redisClient.Set(ctx, key, encoded, TTL).Err(); err != nil {
		return fmt.Errorf("error staging export in Redis: %w", err)
	}

	return nil
}
