package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scopeforge/config"
	"scopeforge/internal/schema"
)

// Seeds the built-in blueprint into the schemas collection so it can be
// inspected and copied with ordinary Mongo tooling. The server itself always
// serves the blueprint from memory.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	blueprint := schema.Blueprint()
	blueprint.CreatedAt = time.Now()
	blueprint.UpdatedAt = time.Now()

	coll := client.Database(cfg.MongoDB).Collection("schemas")
	_, err = coll.ReplaceOne(ctx,
		bson.M{"_id": blueprint.ID},
		blueprint,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		log.Fatalf("Failed to seed blueprint: %v", err)
	}

	fmt.Printf("Seeded schema '%s' (%d steps)\n", blueprint.Title, len(blueprint.Steps))
}
