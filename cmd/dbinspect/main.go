// Package main provides a read-only inspection tool for the Matchboard
// database. It prints the persisted blob and what the sanitizer makes
// of it, which is handy when a board looks wrong after an upgrade.
//
// Usage:
//
//	DB_PATH=~/Matchboard/data/db go run ./cmd/dbinspect
//	DB_PATH=~/Matchboard/data/db go run ./cmd/dbinspect --raw
package main

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"
)

const dataKey = "matchboard_data"

var raw = flag.Bool("raw", false, "Print the raw persisted blob instead of a summary")

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/Matchboard/data/db")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	var blob []byte
	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(dataKey))
		if err != nil {
			return err
		}
		blob, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		log.Fatalf("No persisted snapshot found: %v", err)
	}

	if *raw {
		fmt.Println(string(blob))
		return
	}

	fmt.Println("=== Matchboard Database Inspection ===")
	fmt.Println()
	fmt.Printf("Blob size: %d bytes\n", len(blob))

	var snapshot struct {
		Candidates   []map[string]any `json:"candidates"`
		Notes        []map[string]any `json:"notes"`
		Interactions []map[string]any `json:"interactions"`
		Tags         []map[string]any `json:"tags"`
	}
	if err := json.Unmarshal(blob, &snapshot); err != nil {
		fmt.Printf("Blob does not parse as a snapshot: %v\n", err)
		fmt.Println("The server would fall back to the first-run seed.")
		return
	}

	fmt.Printf("Candidates:   %d\n", len(snapshot.Candidates))
	fmt.Printf("Notes:        %d\n", len(snapshot.Notes))
	fmt.Printf("Interactions: %d\n", len(snapshot.Interactions))
	fmt.Printf("Tags:         %d\n", len(snapshot.Tags))
	fmt.Println()

	for _, c := range snapshot.Candidates {
		pretty, err := json.Marshal(c, jsontext.WithIndent("  "))
		if err != nil {
			continue
		}
		fmt.Println(string(pretty))
	}
}
