package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"

	"github.com/cognicore/wordfreq/pkg/wordfreq/cover"
)

func main() {
	var (
		input  = flag.String("wordlist", "", "Frequency-list file in word|TAGS format (required)")
		output = flag.String("o", "", "Cover YAML file to append to (default: stdout)")
		skip   = flag.Int("skip", 0, "Number of leading wordlist lines to skip")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--wordlist required")
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var r io.Reader = f
	if *skip > 0 {
		r = skipLines(f, *skip)
	}

	entries, err := cover.Generate(r)
	if err != nil {
		log.Fatal(err)
	}

	var out io.Writer = os.Stdout
	if *output != "" {
		of, err := os.OpenFile(*output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer of.Close()
		if _, err := of.WriteString("\n"); err != nil {
			log.Fatal(err)
		}
		out = of
	}

	if err := cover.AppendYAML(out, entries); err != nil {
		log.Fatal(err)
	}

	if *output != "" {
		log.Printf("appended %d entries to %s", len(entries), *output)
	}
}

// skipLines consumes n lines from r and returns a reader positioned
// after them.
func skipLines(r io.Reader, n int) io.Reader {
	br := bufio.NewReader(r)
	for i := 0; i < n; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			break
		}
	}
	return br
}
