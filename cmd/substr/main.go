// Command substr exposes the search engine on the command line: exact
// substring search, overlap-counting, per-byte frequency tallies, and
// find-and-replace over a file or stdin.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	segascii "github.com/segmentio/asm/ascii"
	"github.com/spf13/cobra"

	"github.com/mhr3/substr/modify"
	"github.com/mhr3/substr/search"
)

var (
	useVector bool
	countOnly bool
)

var rootCmd = &cobra.Command{
	Use:   "substr",
	Short: "byte-oriented substring search and rewrite",
	Long: `substr searches and rewrites raw bytes: exact substring search with
overlapping matches, per-byte frequency tallies, and in-place replace.
Input comes from FILE when given, stdin otherwise.`,
	SilenceUsage: true,
}

var findCmd = &cobra.Command{
	Use:   "find PATTERN [FILE]",
	Short: "print the start:end span of every match, overlaps included",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args, 1)
		if err != nil {
			return err
		}
		pat := []byte(args[0])
		if err := validatePattern(data, pat); err != nil {
			return err
		}
		warnNonASCII(data)

		var spans []search.Span
		if useVector {
			spans = search.FindAllVector(data, pat)
		} else {
			spans = search.FindAll(data, pat)
		}
		if countOnly {
			fmt.Fprintln(cmd.OutOrStdout(), len(spans))
			return nil
		}
		for _, s := range spans {
			fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\n", s.Start, s.End)
		}
		return nil
	},
}

var countCmd = &cobra.Command{
	Use:   "count PATTERN [FILE]",
	Short: "print the number of matches, counting overlaps",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args, 1)
		if err != nil {
			return err
		}
		pat := []byte(args[0])
		if err := validatePattern(data, pat); err != nil {
			return err
		}
		warnNonASCII(data)

		n := 0
		if useVector {
			n = search.CountVector(data, pat)
		} else {
			n = search.Count(data, pat)
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

var freqCmd = &cobra.Command{
	Use:   "freq BYTES [FILE]",
	Short: "tally occurrences of each distinct byte of BYTES",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "" {
			return errors.New("BYTES must not be empty")
		}
		data, err := readInput(args, 1)
		if err != nil {
			return err
		}
		warnNonASCII(data)

		queries := []byte(args[0])
		var tally map[byte]int
		if useVector {
			tally = search.CountBytesVector(data, queries...)
		} else {
			tally = search.CountBytes(data, queries...)
		}
		// Report in first-appearance order of the query string.
		seen := make(map[byte]bool, len(queries))
		for _, q := range queries {
			if seen[q] {
				continue
			}
			seen[q] = true
			fmt.Fprintf(cmd.OutOrStdout(), "%q %d\n", string(q), tally[q])
		}
		return nil
	},
}

var replaceCmd = &cobra.Command{
	Use:   "replace FIND REPLACEMENT [FILE]",
	Short: "replace every non-overlapping match and print the result",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args, 2)
		if err != nil {
			return err
		}
		if err := validatePattern(data, []byte(args[0])); err != nil {
			return err
		}
		warnNonASCII(data)

		base := string(data)
		modify.Replace(&base, args[0], args[1])
		_, err = io.WriteString(cmd.OutOrStdout(), base)
		return err
	},
}

func readInput(args []string, idx int) ([]byte, error) {
	if len(args) > idx {
		return os.ReadFile(args[idx])
	}
	return io.ReadAll(os.Stdin)
}

// validatePattern enforces the engine's preconditions at the CLI boundary
// so contract violations surface as errors instead of panics.
func validatePattern(data, pat []byte) error {
	if len(pat) == 0 {
		return errors.New("pattern must not be empty")
	}
	if len(pat) > len(data) {
		return fmt.Errorf("pattern (%d bytes) is longer than the input (%d bytes)", len(pat), len(data))
	}
	return nil
}

// warnNonASCII flags inputs the engine will treat as opaque bytes.
func warnNonASCII(data []byte) {
	if !segascii.Valid(data) {
		fmt.Fprintln(os.Stderr, "substr: input is not ASCII; matching on raw bytes")
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&useVector, "vector", false, "use the vectorized scan")
	findCmd.Flags().BoolVar(&countOnly, "count", false, "print only the number of matches")

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(freqCmd)
	rootCmd.AddCommand(replaceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
