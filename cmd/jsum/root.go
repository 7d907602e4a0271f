package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsum/internal/jsum/commands"
	"jsum/internal/jsum/types"
)

// Version information, overridable at build time via -ldflags.
var (
	version   = "1.1.0"
	buildDate = "2026-08-25"
)

// NewRootCommand creates the jsum command. All mode flags are
// mutually exclusive and resolve to a single types.Mode before any
// input is touched, so the hashing loop never sees an undecided mode.
func NewRootCommand() *cobra.Command {
	var (
		binary      bool
		sumStyle    bool
		named       bool
		lines       bool
		echo        bool
		blocks      bool
		rolling     bool
		showVersion bool
		width       int
	)

	cmd := &cobra.Command{
		Use:   "jsum [flags] [--] [file ...]",
		Short: "Compute fast integer checksums over files or standard input.",
		Long: `jsum computes a fixed-width integer checksum over each named file.
Specifying no name, or '-' as a name, reads from standard input.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags parsed fine; from here on an error is a failed
			// input, not a usage problem.
			cmd.SilenceUsage = true

			w := types.Width(width)
			if !w.Valid() {
				cmd.SilenceUsage = false
				return fmt.Errorf("invalid digest width %d (want 16, 32 or 64)", width)
			}

			if showVersion {
				// The version flag is handled here rather than via
				// cobra's built-in so the report names the digest
				// width actually in effect.
				fmt.Fprintf(cmd.OutOrStdout(), "jsum %s (%s) [%d-bit digests]\n", version, buildDate, w)
				return nil
			}

			mode := types.ModeWhole
			switch {
			case binary || sumStyle:
				mode = types.ModeBinary
			case named:
				mode = types.ModeNamed
			case lines:
				mode = types.ModeLine
			case echo:
				mode = types.ModeLineEcho
			case blocks:
				mode = types.ModeSubBlock
			case rolling:
				mode = types.ModeRolling
			}

			cfg := types.Config{Mode: mode, Width: w}
			return commands.Sum(cfg, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVarP(&binary, "binary", "b", false, "output in md5sum binary style instead of bare digests")
	cmd.Flags().BoolVarP(&sumStyle, "sum-style", "s", false, "alias for --binary")
	cmd.Flags().BoolVarP(&named, "name", "n", false, "output just the file name after the digest")
	cmd.Flags().BoolVarP(&lines, "lines", "l", false, "generate a digest for each input text line")
	cmd.Flags().BoolVarP(&echo, "echo-lines", "L", false, "same as --lines but also prints the hashed text")
	cmd.Flags().BoolVarP(&blocks, "blocks", "B", false, "output a digest for every 4096-byte block of the file")
	cmd.Flags().BoolVarP(&rolling, "rolling", "r", false, "fold chunks into one digest carried across the whole file")
	cmd.Flags().IntVar(&width, "width", int(types.Width64), "digest width in bits (16, 32 or 64)")
	cmd.Flags().BoolVarP(&showVersion, "version", "v", false, "print version information and exit")
	cmd.MarkFlagsMutuallyExclusive("binary", "sum-style", "name", "lines", "echo-lines", "blocks", "rolling")

	return cmd
}
