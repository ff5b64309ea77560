package infra

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupDB connects to MongoDB and returns a handle on the service database.
// The client behind the returned handle is process-wide shared state; callers
// disconnect it via db.Client() on shutdown.
func SetupDB() *mongo.Database {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.wgolkq8.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASS"),
		)
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		panic("Failed to connect to database")
	}

	if err := client.Ping(ctx, nil); err != nil {
		panic(fmt.Sprintf("Failed to ping database: %v", err))
	}
	log.Println("Pinged your deployment. You successfully connected to MongoDB!")

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "bistroDB"
	}
	return client.Database(dbName)
}
