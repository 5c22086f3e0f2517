package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	VERSION      = "0.1.0"
	PHRED_OFFSET = 33
)

// Define color functions
var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

func defaultOptions() cleanOptions {
	return cleanOptions{OutFile: "-"}
}

// newRootCommand builds the `fqclean` command bound to o
func newRootCommand(o *cleanOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fqclean",
		Short:         bold("Trim and filter FASTQ reads by quality and length"),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       VERSION,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCleanCommand(cmd, *o)
		},
	}

	// Set the help function
	rootCmd.SetHelpFunc(helpFunc)

	// Define flags
	flags := rootCmd.Flags()
	flags.SortFlags = false
	flags.IntVarP(&o.MinLength, "min-length", "l", 0, "Minimum length for each read in bp (after trimming)")
	flags.Float64VarP(&o.MinAvgQuality, "min-avg-quality", "q", 0, "Minimum average quality for each read (after trimming)")
	flags.IntVarP(&o.MinTrimQuality, "min-trim-quality", "t", 0, "Trim the edges of each read until a base of at least this quality is found")
	flags.BoolVarP(&o.PairedEnd, "paired-end", "p", false, "Input is interleaved paired-end (8 lines per record)")
	flags.StringVarP(&o.OutFile, "out", "o", "-", "Output FASTQ file (default: stdout)")
	flags.BoolVarP(&o.Verbose, "verbose", "v", false, "Print a summary to stderr")

	return rootCmd
}

// execute runs the command and exits with status 1 on error
func execute(rootCmd *cobra.Command) {
	// Custom error handling
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), red("Error: "+err.Error()))
		fmt.Fprintln(rootCmd.ErrOrStderr(), red("Try 'fqclean --help' for more information"))
		exitFunc(1)
	}
}

func main() {
	// A closed downstream pipe surfaces as EPIPE on write instead of killing the process
	signal.Ignore(syscall.SIGPIPE)

	opts := defaultOptions()
	execute(newRootCommand(&opts))
}
