// Package cmd implements the queryproc CLI surface (C9): a cobra root
// command that loads the URL table, lexicon, and index file, then runs a
// REPL reading one query per line from stdin, grounded on the teacher's
// own cmd/root.go cobra+viper scaffold.
package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hieudo/queryproc/internal/config"
	"github.com/hieudo/queryproc/internal/logging"
	"github.com/hieudo/queryproc/internal/query"
	"github.com/hieudo/queryproc/internal/store"
)

var cfgFile string
var docStoreKind string
var docStorePath string

var rootCmd = &cobra.Command{
	Use:   "queryproc <urlTableFile> <lexiconFile> <indexFile>",
	Short: "Boolean keyword search over a disk-backed BM25 inverted index",
	Args:  cobra.ExactArgs(3),
	RunE:  runQueryProc,
}

// Execute runs the root command, exiting the process with code 1 on a
// startup failure per spec.md §6.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("%s", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.queryproc.yaml)")
	rootCmd.Flags().StringVar(&docStoreKind, "doc-store", "sqlite", "Document store backend kind")
	rootCmd.Flags().StringVar(&docStorePath, "doc-store-path", "documents.db", "Path to the document store database")
}

func runQueryProc(_ *cobra.Command, args []string) error {
	urlTableFile, lexiconFile, indexFile := args[0], args[1], args[2]

	logger := logging.New(os.Stderr)
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	urlFile, err := os.Open(urlTableFile)
	if err != nil {
		return fmt.Errorf("opening url table: %w", err)
	}
	defer urlFile.Close()

	var urlTable *store.URLTable
	if err := logger.Stage("urlTable", func() (int, error) {
		t, err := store.LoadURLTable(urlFile)
		if err != nil {
			return 0, err
		}
		urlTable = t
		return int(t.Size()), nil
	}); err != nil {
		return err
	}

	lexFile, err := os.Open(lexiconFile)
	if err != nil {
		return fmt.Errorf("opening lexicon: %w", err)
	}
	defer lexFile.Close()

	var lexicon *store.Lexicon
	if err := logger.Stage("lexicon", func() (int, error) {
		l, err := store.LoadLexicon(lexFile)
		if err != nil {
			return 0, err
		}
		lexicon = l
		return l.Len(), nil
	}); err != nil {
		return err
	}

	index, err := store.OpenIndexFile(indexFile)
	if err != nil {
		return err
	}
	defer index.Close()

	docs, err := store.OpenDocumentStore(docStoreKind, docStorePath)
	if err != nil {
		return err
	}
	defer docs.Close()

	dispatcher := &query.Dispatcher{
		Lexicon:   lexicon,
		URLTable:  urlTable,
		Index:     index,
		Docs:      docs,
		Snippet:   store.Snippet,
		TopK:      cfg.TopK,
		Params:    cfg.Params(),
		AndMarker: cfg.AndMarker,
		OrMarker:  cfg.OrMarker,
	}

	return repl(dispatcher)
}

func repl(dispatcher *query.Dispatcher) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n====================\n\nPlease enter your query: ")
		if !scanner.Scan() {
			break
		}
		q := scanner.Text()
		fmt.Printf("\nSearching %q...\n\n", q)

		results, err := dispatcher.Execute(q)
		if err != nil {
			// Lenient query-error policy (spec.md §6/§7): report and
			// continue to the next query rather than exiting.
			color.Red("query failed: %s", err)
			continue
		}
		printResults(results)
	}
	return scanner.Err()
}

func printResults(results []query.Result) {
	if len(results) == 0 {
		color.Yellow("no results found")
		return
	}
	fmt.Printf("%d results found. Most relevant ones:\n\n", len(results))
	printResultTable(results)
}
