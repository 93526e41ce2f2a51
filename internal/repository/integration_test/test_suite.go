package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"cargo-relay/internal/pkg/config"
	"cargo-relay/internal/pkg/mongodb"
	"cargo-relay/pkg/logger/zap_adapter"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	databaseInstance *mongo.Database
	databaseOnce     sync.Once
)

func GetDatabase() *mongo.Database {
	databaseOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg := &config.Mongo{
			URI:      os.Getenv("MONGO_URI"),
			Database: os.Getenv("MONGO_DB"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		client, err := mongodb.NewClient(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		databaseInstance = client.Database(cfg.Database)
	})

	return databaseInstance
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	for _, collection := range []string{"packages", "deliveries", "profiles"} {
		err := GetDatabase().Collection(collection).Drop(ctx)
		require.NoError(t, err)
	}
}
