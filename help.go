package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Custom help function for the root command.
// Flag lines are generated from the command's flag set so they stay in sync
func helpFunc(cmd *cobra.Command, args []string) {
	fmt.Fprintf(cmd.OutOrStdout(), `
%s

%s
  Reads FASTQ from stdin, trims low-quality bases from both ends of every read
  and keeps only reads (or read pairs) that are long enough and of high enough
  average quality after trimming. Quality scores are Phred+33.

%s
%s

%s
  %s
  %s
  %s

`,
		bold(cyan("fqclean")+" v."+VERSION+" - Quality trimming and filtering of FASTQ streams"),
		bold(yellow("Description:")),
		bold(yellow("Flags:")),
		formatFlags(cmd.Flags()),
		bold(yellow("Usage examples:")),
		cyan("cat input.fq | fqclean --min-trim-quality 20 --min-length 50 > clean.fq"),
		cyan("cat interleaved.fq | fqclean --paired-end --min-avg-quality 25 > clean.fq"),
		cyan("zcat input.fq.gz | fqclean -t 10 -l 36 -o clean.fq.gz"),
	)
}

// formatFlags renders one help line per flag, in definition order
func formatFlags(flags *pflag.FlagSet) string {
	var lines []string
	flags.VisitAll(func(f *pflag.Flag) {
		name := "    --" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", --" + f.Name
		}
		if t := f.Value.Type(); t != "bool" {
			name += " <" + t + ">"
		}
		line := "  " + cyan(fmt.Sprintf("%-32s", name)) + ": " + f.Usage
		if f.Value.Type() != "bool" && f.DefValue != "" {
			line += fmt.Sprintf(" (default, %s)", f.DefValue)
		}
		lines = append(lines, line)
	})
	return strings.Join(lines, "\n")
}
