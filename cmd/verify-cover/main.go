package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognicore/wordfreq/pkg/wordfreq/cover"
)

func main() {
	var (
		coverPath = flag.String("cover", "", "Cover YAML file (required)")
		wordlist  = flag.String("wordlist", "", "Frequency-list file whose words must all be covered (optional)")
	)
	flag.Parse()

	if *coverPath == "" {
		log.Fatal("--cover required")
	}

	var words []string
	if *wordlist != "" {
		var err error
		words, err = readWords(*wordlist)
		if err != nil {
			log.Fatal(err)
		}
	}

	f, err := os.Open(*coverPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	report, err := cover.Verify(f, words)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(report.Summary())
	if !report.OK() {
		os.Exit(1)
	}
}

// readWords extracts the word column from a word|TAGS wordlist file.
func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		word, _, _ := strings.Cut(line, "|")
		if word != "" {
			words = append(words, word)
		}
	}
	return words, scanner.Err()
}
