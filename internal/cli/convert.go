package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"quizmark/internal/config"
	"quizmark/internal/domain"
	"quizmark/internal/logger"
	"quizmark/internal/quiztext"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const defaultConcurrency = 4

// commonFlags registers the flags shared by every command.
type commonFlags struct {
	ignoreCase  *bool
	concurrency *int
	verbose     *bool
}

func registerCommonFlags(flags *flag.FlagSet) commonFlags {
	return commonFlags{
		ignoreCase:  flags.Bool("ignore-case", false, "Accept lower-case option letters (a. b. c.)"),
		concurrency: flags.Int("concurrency", defaultConcurrency, "Number of files read in parallel"),
		verbose:     flags.Bool("v", false, "Log progress to stderr"),
	}
}

func (f commonFlags) loadOptions(stderr io.Writer) (loadOptions, error) {
	level := "warn"
	if *f.verbose {
		level = "debug"
	}
	log, err := logger.New(config.LoggerConfig{Level: level}, stderr)
	if err != nil {
		return loadOptions{}, err
	}
	return loadOptions{ignoreCase: *f.ignoreCase, concurrency: *f.concurrency, log: log}, nil
}

// parseArgs parses flags and requires at least one file argument.
func parseArgs(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if flags.NArg() == 0 {
		fmt.Fprintln(stderr, "at least one FILE is required")
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// runConvert builds the handler for the convert command.
func runConvert(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		format := flags.String("format", "json", "Output format: json, yaml or text")
		common := registerCommonFlags(flags)
		if code, ok := parseArgs(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		switch *format {
		case "json", "yaml", "text":
		default:
			fmt.Fprintf(stderr, "unknown format %q\n", *format)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		opts, err := common.loadOptions(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Conversion failed:\n%v\n", err)
			return ExitError
		}
		defer func() { _ = opts.log.Sync() }()

		files, err := loadFiles(context.Background(), flags.Args(), opts)
		if err != nil {
			fmt.Fprintf(stderr, "Conversion failed:\n%v\n", err)
			return ExitError
		}

		if err := writeFiles(stdout, *format, files); err != nil {
			fmt.Fprintf(stderr, "Conversion failed:\n%v\n", err)
			return ExitError
		}
		opts.log.Info("Converted quiz files", zap.Int("files", len(files)), zap.String("format", *format))
		return ExitOK
	}
}

// writeFiles renders one file as its bare question list, several as a list
// of {file, questions} documents. Text output separates files with a blank line.
func writeFiles(w io.Writer, format string, files []loadedFile) error {
	switch format {
	case "text":
		texts := make([]string, 0, len(files))
		for _, f := range files {
			texts = append(texts, quiztext.Format(f.Questions))
		}
		_, err := io.WriteString(w, strings.Join(texts, "\n"))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(payload(files)); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload(files))
	}
}

func payload(files []loadedFile) interface{} {
	if len(files) == 1 {
		if files[0].Questions == nil {
			return []domain.Question{}
		}
		return files[0].Questions
	}
	return files
}
