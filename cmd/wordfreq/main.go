package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"dataflow"
)

var (
	recursive  bool
	extension  string
	delimiters string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "wordfreq <dir>",
	Short: "Count word frequencies across the text files in a directory",
	Long: `wordfreq walks a directory, reads every file with the configured
extension, tokenizes the text on the delimiter characters, and prints one
"word - count" line per distinct word, in the order words first appear.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	rootCmd.Flags().StringVar(&extension, "ext", ".txt", "Only read files with this extension")
	rootCmd.Flags().StringVar(&delimiters, "delimiters", " \n\t\r,.!?;:\"", "Characters that separate words")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	paths := dataflow.Filter(dataflow.Dir(args[0], recursive), func(p string) bool {
		return strings.HasSuffix(p, extension)
	})

	var chunks []string
	for h := range dataflow.OpenFiles(paths).Values() {
		if !h.IsOpen() {
			logger.Warn().Str("path", h.Path).Msg("skipping unreadable file")
			continue
		}
		content, err := io.ReadAll(h)
		if cerr := h.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", h.Path, err)
		}
		logger.Debug().Str("path", h.Path).Int("bytes", len(content)).Msg("read file")
		chunks = append(chunks, string(content))
	}

	words := dataflow.Filter(
		dataflow.Transform(dataflow.Split(dataflow.FromSlice(chunks), delimiters), strings.ToLower),
		func(w string) bool { return w != "" },
	)

	counts := dataflow.AggregateByKey(words, 0,
		func(acc *int, _ string) { *acc++ },
		dataflow.Identity[string],
	)

	for kv := range counts.Values() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s - %d\n", kv.Key, kv.Value)
	}
	return nil
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
