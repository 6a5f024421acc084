package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"quizmark/internal/validation"

	"go.uber.org/zap"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		common := registerCommonFlags(flags)
		if code, ok := parseArgs(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		opts, err := common.loadOptions(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		defer func() { _ = opts.log.Sync() }()

		files, err := loadFiles(context.Background(), flags.Args(), opts)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		validator := validation.NewValidator(0)
		code := ExitOK
		for _, f := range files {
			errs := validator.ValidateQuestions(f.Questions)
			if len(errs) == 0 {
				fmt.Fprintf(stdout, "%s: OK (%d questions)\n", f.Path, len(f.Questions))
				continue
			}
			code = ExitError
			fmt.Fprintf(stdout, "%s: %d problems\n", f.Path, len(errs))
			for _, e := range errs {
				fmt.Fprintf(stdout, "  %s\n", e.Error())
			}
			opts.log.Debug("Quiz file failed validation", zap.String("file", f.Path), zap.Int("problems", len(errs)))
		}
		return code
	}
}
