package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cognicore/wordfreq/internal/fetch"
	"github.com/cognicore/wordfreq/pkg/wordfreq"
	"github.com/cognicore/wordfreq/pkg/wordfreq/config"
	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
	"github.com/cognicore/wordfreq/pkg/wordfreq/rank"
	"github.com/cognicore/wordfreq/pkg/wordfreq/source"
	"github.com/cognicore/wordfreq/pkg/wordfreq/store/sqlite"
)

func main() {
	var (
		topN       = flag.Int("n", 1000, "Number of top words to keep")
		output     = flag.String("o", "", "Output file (default: stdout)")
		ngramFiles = flag.String("ngram", "", "Comma-separated Google Books 1-gram file(s) (.gz or plain)")
		lemmaFile  = flag.String("wordfreq", "", "Lemma-frequency file (wordfrequency.info lemmas format)")
		csvFile    = flag.String("csv", "", "CSV frequency file (word,frequency)")
		download   = flag.String("download", "", "URL of a remote lemma-frequency list")
		configPath = flag.String("config", "", "YAML run configuration (overrides source flags)")
		dbPath     = flag.String("db", "", "Optional sqlite snapshot database")
	)
	flag.Parse()

	ctx := context.Background()

	opts, outPath, snapPath, err := buildOptions(ctx, *configPath, *ngramFiles, *lemmaFile, *csvFile, *download, *topN)
	if err != nil {
		if err == internalerr.ErrNoSource {
			flag.Usage()
			log.Fatal("one of --ngram, --wordfreq, --csv, --download, or --config is required")
		}
		log.Fatal(err)
	}
	if *output != "" {
		outPath = *output
	}
	if *dbPath != "" {
		snapPath = *dbPath
	}

	result, err := wordfreq.New(opts).Run(ctx)
	if err != nil {
		log.Fatal(err)
	}

	if snapPath != "" {
		if err := snapshot(ctx, snapPath, result); err != nil {
			log.Fatal(err)
		}
	}

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("%v: %v", internalerr.ErrOutputTarget, err)
		}
		defer f.Close()
		out = f
	}

	if err := rank.Format(out, result.Words); err != nil {
		log.Fatalf("%v: %v", internalerr.ErrOutputTarget, err)
	}

	if outPath != "" {
		log.Printf("run %s: wrote %d words to %s", result.RunID, len(result.Words), outPath)
		withPOS := 0
		for _, w := range result.Words {
			if len(w.Tags) > 0 {
				withPOS++
			}
		}
		log.Printf("words with POS tags: %d/%d", withPOS, len(result.Words))
		if len(result.Words) > 0 {
			last := result.Words[len(result.Words)-1]
			log.Printf("frequency range: %.0f to %.0f", last.Freq, result.Words[0].Freq)
		}
	}
}

// buildOptions resolves the mutually exclusive source selection into
// pipeline options plus the configured output and snapshot paths.
// A --config file takes precedence over source flags.
func buildOptions(ctx context.Context, configPath, ngramFiles, lemmaFile, csvFile, download string, topN int) (wordfreq.Options, string, string, error) {
	obs := source.LogObserver{}

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return wordfreq.Options{}, "", "", err
		}
		opts, err := cfg.Options(obs)
		return opts, cfg.Output, cfg.SnapshotDB, err
	}

	selected := 0
	for _, s := range []string{ngramFiles, lemmaFile, csvFile, download} {
		if s != "" {
			selected++
		}
	}
	if selected == 0 {
		return wordfreq.Options{}, "", "", internalerr.ErrNoSource
	}
	if selected > 1 {
		return wordfreq.Options{}, "", "", fmt.Errorf("%w: --ngram, --wordfreq, --csv, and --download are mutually exclusive", internalerr.ErrInvalidConfig)
	}

	opts := wordfreq.Options{TopN: topN, Observer: obs}
	switch {
	case ngramFiles != "":
		opts.Source = wordfreq.Source{Kind: source.KindNgram, Paths: splitPaths(ngramFiles)}
	case lemmaFile != "":
		opts.Source = wordfreq.Source{Kind: source.KindLemma, Paths: []string{lemmaFile}}
	case csvFile != "":
		opts.Source = wordfreq.Source{Kind: source.KindCSV, Paths: []string{csvFile}}
	case download != "":
		log.Printf("downloading frequency data from %s...", download)
		client := &fetch.Client{}
		local, err := client.Download(ctx, download)
		if err != nil {
			return wordfreq.Options{}, "", "", fmt.Errorf("%w: %v", internalerr.ErrSourceUnavailable, err)
		}
		log.Printf("downloaded to %s", local)
		opts.Source = wordfreq.Source{Kind: source.KindLemma, Paths: []string{local}}
	}
	return opts, "", "", nil
}

func snapshot(ctx context.Context, path string, result wordfreq.Result) error {
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.SaveRun(ctx, result.RunID, result.Words)
}

func splitPaths(s string) []string {
	var paths []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
