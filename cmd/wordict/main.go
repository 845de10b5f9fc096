package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/sysd/exercises/word-dictionary/internal/config"
	"github.com/kumarlokesh/sysd/exercises/word-dictionary/internal/dictionary"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	wordsFile := flag.String("words", "", "Word list, one word per line (overrides config)")
	wildcard := flag.String("wildcard", "", "Pattern character matching any single character (overrides config)")
	limit := flag.Int("limit", 0, "Maximum number of results for complete and match (overrides config)")
	flag.Usage = showHelp
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *wordsFile != "" {
		cfg.Dictionary.WordsFile = *wordsFile
	}
	if *wildcard != "" {
		cfg.Dictionary.Wildcard = *wildcard
	}
	if *limit > 0 {
		cfg.Query.Limit = *limit
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg.Log)

	if flag.NArg() == 0 {
		showHelp()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command, args, words := splitArgs(flag.Args())

	d := dictionary.New(dictionary.Options{
		Wildcard:  cfg.Dictionary.WildcardRune(),
		MinLength: cfg.Dictionary.MinLength,
		Lowercase: cfg.Dictionary.Lowercase,
		Logger:    log.Logger,
	})
	if cfg.Dictionary.WordsFile != "" {
		if _, err := d.LoadFile(ctx, cfg.Dictionary.WordsFile); err != nil {
			log.Fatal().Err(err).Msg("Failed to load dictionary")
		}
	}
	d.Add(words...)

	if err := run(d, command, args, cfg.Query.Limit); err != nil {
		log.Error().Err(err).Str("command", command).Msg("Command failed")
		showHelp()
		os.Exit(1)
	}
}

func setupLogging(cfg config.LogConfig) {
	// Validate has already checked the level
	level, _ := cfg.ParseLevel()
	zerolog.SetGlobalLevel(level)

	if cfg.Pretty {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

// splitArgs separates the command, its arguments and any words given after "--".
func splitArgs(all []string) (string, []string, []string) {
	command := all[0]
	rest := all[1:]
	for i, a := range rest {
		if a == "--" {
			return command, rest[:i], rest[i+1:]
		}
	}
	return command, rest, nil
}

func run(d *dictionary.Dictionary, command string, args []string, limit int) error {
	switch command {
	case "stats":
		fmt.Printf("Words: %d\n", d.Len())
		fmt.Printf("Wildcard: %q\n", d.Wildcard())
		return nil
	case "search", "prefix", "complete", "match":
	default:
		return fmt.Errorf("unknown command: %s", command)
	}

	if len(args) != 1 {
		return fmt.Errorf("%s takes exactly one argument, got %d", command, len(args))
	}
	query := args[0]

	switch command {
	case "search":
		fmt.Println(d.Search(query))
	case "prefix":
		fmt.Println(d.HasPrefix(query))
	case "complete":
		printWords(d.Complete(query, limit))
	case "match":
		printWords(d.Match(query, limit))
	}
	return nil
}

func printWords(words []string) {
	if len(words) == 0 {
		fmt.Println("No matches")
		return
	}
	fmt.Println(strings.Join(words, "\n"))
}

func showHelp() {
	helpText := `Word Dictionary CLI

Usage:
  wordict [flags] <command> <argument> [-- word...]

Flags:
  -config string     Path to config file
  -words string      Word list file, one word per line
  -wildcard string   Character matching any single character (default ".")
  -limit int         Maximum results for complete and match

Commands:
  search <pattern>   Report whether a word matches the pattern
  prefix <prefix>    Report whether any word starts with prefix
  complete <prefix>  List words starting with prefix
  match <pattern>    List words matching the pattern
  stats              Show dictionary size

Example:
  wordict search 'b..' -- bad dad mad
`
	fmt.Fprint(os.Stderr, helpText)
}
