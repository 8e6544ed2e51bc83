package db

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

//go:embed seed/*.json
var seedFS embed.FS

var seedFiles = map[string]string{
	"divisions": "seed/divisions.json",
	"districts": "seed/districts.json",
	"upazilas":  "seed/upazilas.json",
}

// SeedReferenceData loads the administrative geography collections from the
// embedded JSON files. A collection that already holds documents is left
// untouched, so re-running the process never duplicates rows.
func SeedReferenceData(ctx context.Context, database *mongo.Database) error {
	seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for name, path := range seedFiles {
		collection := database.Collection(name)

		count, err := collection.EstimatedDocumentCount(seedCtx)
		if err != nil {
			return fmt.Errorf("failed to count %s: %w", name, err)
		}
		if count > 0 {
			continue
		}

		data, err := seedFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", path, err)
		}

		var docs []map[string]any
		if err := json.Unmarshal(data, &docs); err != nil {
			return fmt.Errorf("failed to parse seed file %s: %w", path, err)
		}

		rows := make([]any, 0, len(docs))
		for _, doc := range docs {
			rows = append(rows, doc)
		}

		if _, err := collection.InsertMany(seedCtx, rows); err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}
		log.Printf("Seeded %d documents into %s", len(rows), name)
	}

	return nil
}
