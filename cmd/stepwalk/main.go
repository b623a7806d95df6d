package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/steps/pkg/steps"
)

func main() {
	var debug bool

	root := &cobra.Command{
		Use:           "stepwalk",
		Short:         "Walk through a step sequence in the terminal",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(runCmd(&debug))
	root.AddCommand(checkCmd())
	root.AddCommand(initCmd())

	err := root.Execute()
	steps.CloseLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorMsg("%v", err))
		os.Exit(1)
	}
}

// configureLogging applies the definition's log settings unless --debug
// forces debug output.
func configureLogging(path, level string, debug bool) {
	if path != "" {
		steps.SetLogPath(path)
	}
	if debug {
		steps.SetLogLevel(slog.LevelDebug)
		return
	}
	if level != "" {
		steps.SetRawLogLevel(level)
	}
}
