package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// exitBack is the exit status of the map command when the user pressed
// Back. The parent process runs the landing flow again.
const exitBack = 3

var errBack = errors.New("back to landing")

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "riftrewind",
		Short:         "Explore a League season rewind on an interactive map",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.load()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd.Context(), opts)
		},
	}

	opts.bindPersistent(rootCmd)
	opts.bindLanding(rootCmd)

	rootCmd.AddCommand(mapCmd(opts))
	rootCmd.AddCommand(rewindCmd(opts))
	rootCmd.AddCommand(storyCmd(opts))
	rootCmd.AddCommand(mockServerCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errBack) {
			os.Exit(exitBack)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
