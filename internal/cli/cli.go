// Package cli is the command-line surface of schemeconv.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/schemeconv/schemeconv/internal/convert"
	"github.com/schemeconv/schemeconv/internal/log"
	"github.com/schemeconv/schemeconv/internal/scheme"
	"github.com/schemeconv/schemeconv/internal/theme"
	"github.com/schemeconv/schemeconv/internal/version"
)

// ErrUsage marks argument mistakes; they exit with a distinct status.
var ErrUsage = errors.New("usage error")

type options struct {
	outDir         string
	extendedColors bool
	verbose        bool
}

// Execute runs the root command and returns the process exit status:
// 0 on success, 2 for argument mistakes, 1 for everything else.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error("%v", err)
		if errors.Is(err, ErrUsage) {
			fmt.Fprint(os.Stderr, cmd.UsageString())
			return 2
		}
		return 1
	}
	return 0
}

// NewRootCmd builds the schemeconv command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "schemeconv <scheme>...",
		Short: "Convert sublime-color-scheme files into tmTheme property lists",
		Long: `schemeconv converts sublime-color-scheme documents into legacy tmTheme
property lists. Variables, hex/rgb/hsl literals, and alpha() modifiers are
resolved into canonical hex colors; unrecognized values pass through
verbatim. Each argument is a scheme path or a glob pattern.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("%w: expected at least one scheme file or glob", ErrUsage)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				log.SetLevel(log.LevelDebug)
			}
			return run(args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "", "directory to write .tmTheme files into (default: working directory)")
	cmd.Flags().BoolVar(&opts.extendedColors, "extended-colors", false, "also resolve CSS color syntaxes beyond hex/rgb/hsl")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the schemeconv version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersion())
		},
	}
}

func run(args []string, opts *options) error {
	paths, err := expandArgs(args)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if err := convertFile(path, opts); err != nil {
			return err
		}
	}
	return nil
}

// expandArgs resolves each argument as a literal path first, then as a
// doublestar glob pattern. A pattern matching nothing is an error.
func expandArgs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if _, err := os.Stat(arg); err == nil {
			paths = append(paths, arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no scheme files match %q", arg)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func convertFile(path string, opts *options) error {
	log.Info("converting %s", path)

	doc, err := scheme.Load(path)
	if err != nil {
		return err
	}

	th, err := convert.Document(doc, convert.Options{ExtendedColors: opts.extendedColors})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	// Encode fully in memory first so a failed conversion never leaves a
	// partial theme on disk.
	var buf bytes.Buffer
	if err := th.Encode(&buf); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	dest := theme.Filename(path)
	if opts.outDir != "" {
		dest = filepath.Join(opts.outDir, dest)
	}
	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	log.Debug("wrote %s (%d rules)", dest, len(th.Settings))
	return nil
}
