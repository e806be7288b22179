package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/cognicore/wordfreq/pkg/wordfreq/pos"
	"github.com/cognicore/wordfreq/pkg/wordfreq/store/sqlite"
)

func main() {
	var (
		dbPath = flag.String("db", "", "Snapshot database path (required)")
		runID  = flag.String("run", "", "Run ID (default: most recent)")
		limit  = flag.Int("limit", 20, "Number of top words to show")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	db, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	id := *runID
	if id == "" {
		runs, err := db.Runs(ctx)
		if err != nil {
			log.Fatal(err)
		}
		if len(runs) == 0 {
			log.Fatal("no runs in snapshot database")
		}
		id = runs[0]
	}

	words, err := db.TopWords(ctx, id, *limit)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("run %s\n\n", id)
	fmt.Printf("top %d words:\n", len(words))
	for i, w := range words {
		tag := ""
		if len(w.Tags) > 0 {
			tag = "  [" + w.Tags.String() + "]"
		}
		fmt.Printf("%4d. %-8s %12.0f%s\n", i+1, w.Word, w.Freq, tag)
	}

	counts, err := db.TagCounts(ctx, id)
	if err != nil {
		log.Fatal(err)
	}
	if len(counts) > 0 {
		fmt.Println("\nwords per POS tag:")
		tags := make([]string, 0, len(counts))
		for t := range counts {
			tags = append(tags, string(t))
		}
		sort.Strings(tags)
		for _, t := range tags {
			fmt.Printf("  %-5s %d\n", t, counts[pos.Tag(t)])
		}
	}
}
