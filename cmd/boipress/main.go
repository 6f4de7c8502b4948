package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], DefaultDeps()))
}

// run dispatches to the subcommand and maps its error to an exit code.
func run(ctx context.Context, args []string, deps *Dependencies) int {
	if len(args) == 0 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "convert":
		err = runConvert(ctx, rest, deps)
	case "translate":
		err = runTranslate(ctx, rest, deps)
	case "scrape":
		err = runScrape(ctx, rest, deps)
	case "version":
		fmt.Fprintf(deps.Stdout, "boipress %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, deps)
		return ExitSuccess
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", cmd)
		printUsage(deps.Stderr)
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintln(deps.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
