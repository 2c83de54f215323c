// Package main provides a tool to populate the database with demo data.
//
// By default it resets the board to the first-run fixture. With --demo
// it also generates a spread of candidates, notes and interactions for
// exercising search and the PDF roster.
//
// Usage:
//
//	DB_PATH=~/Matchboard/data/db go run ./cmd/seed
//	DB_PATH=~/Matchboard/data/db go run ./cmd/seed --demo
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/matchboardapp/matchboard-server/internal/domain"
	"github.com/matchboardapp/matchboard-server/internal/store"
)

var demo = flag.Bool("demo", false, "Generate additional demo candidates, notes and interactions")

var (
	demoNames  = []string{"Anna Fischer", "Jonas Weber", "Mia Schulz", "Leon Wagner", "Emma Becker", "Paul Hoffmann", "Lina Koch", "Noah Richter", "Clara Wolf", "Felix Neumann"}
	demoCities = []string{"Berlin", "Munich", "Hamburg", "Cologne", "Frankfurt", "Leipzig"}
	demoJobs   = []string{"Teacher", "Nurse", "Architect", "Photographer", "Barista", "Product Manager"}
)

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/Matchboard/data/db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	adapter, err := store.OpenAdapter(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer adapter.Close()

	s := store.New(adapter, nil, nil)
	data := s.Reset()
	fmt.Printf("Board reset: %d candidates, %d tags\n", len(data.Candidates), len(data.Tags))

	if !*demo {
		return
	}

	tags := data.Tags
	statuses := domain.AllStatuses
	kinds := domain.AllInteractionTypes

	for i, name := range demoNames {
		c := s.AddCandidate(store.CandidateInput{
			Name:         name,
			Age:          24 + rand.Intn(15),
			City:         demoCities[rand.Intn(len(demoCities))],
			Job:          demoJobs[rand.Intn(len(demoJobs))],
			Status:       statuses[rand.Intn(len(statuses))],
			Tags:         []domain.Tag{tags[rand.Intn(len(tags))]},
			NotesSummary: fmt.Sprintf("Demo candidate #%d.", i+1),
		})

		s.AddNote(store.NoteInput{
			CandidateID: c.ID,
			Content:     "Generated demo note for " + c.Name + ".",
		})

		s.AddInteraction(store.InteractionInput{
			CandidateID: c.ID,
			Type:        kinds[rand.Intn(len(kinds))],
			Summary:     "Generated demo interaction.",
			Date:        time.Now().AddDate(0, 0, -rand.Intn(30)),
		})
	}

	final := s.Snapshot()
	fmt.Printf("Demo data written: %d candidates, %d notes, %d interactions\n",
		len(final.Candidates), len(final.Notes), len(final.Interactions))
}
