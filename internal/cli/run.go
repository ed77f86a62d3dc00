package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukrphon/ipauk"
	"github.com/ukrphon/ipauk/internal/config"
	"github.com/ukrphon/ipauk/internal/logger"
)

// ErrBatchFailed is returned when at least one batch line could not be
// transcribed. The failures themselves go to stderr.
var ErrBatchFailed = errors.New("some lines failed")

// Run executes the root command: examples, a batch file or the text in
// args, in that order of precedence.
func Run(cmd *cobra.Command, args []string, flags *Flags) error {
	log := slog.New(logger.NewHandler(cmd.ErrOrStderr(), config.LogConfig{
		Level:  viper.GetString(keyLogLevel),
		Format: "text",
	}))
	checkAccent := viper.GetBool(keyCheckAccent)
	out := cmd.OutOrStdout()

	switch {
	case flags.Examples:
		return runExamples(out)
	case flags.BatchFile != "":
		return runBatch(cmd, flags.BatchFile, checkAccent, log)
	case len(args) > 0:
		text := strings.Join(args, " ")
		if flags.Trace {
			return runTrace(out, text, checkAccent)
		}
		ipa, err := ipauk.Transcribe(text, checkAccent)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, ipa)
		return nil
	default:
		return cmd.Help()
	}
}

func runExamples(out io.Writer) error {
	for _, ex := range ipauk.Examples() {
		ipa, err := ipauk.Transcribe(ex, true)
		if err != nil {
			return fmt.Errorf("example %q: %w", ex, err)
		}
		fmt.Fprintf(out, "%s\t%s\n", ex, ipa)
	}
	return nil
}

func runTrace(out io.Writer, text string, checkAccent bool) error {
	traces, err := ipauk.Trace(text, checkAccent)
	if err != nil {
		return err
	}
	for _, tt := range traces {
		fmt.Fprintf(out, "%s\t%s\n", tt.Token, tt.IPA)
		for _, s := range tt.Steps {
			fmt.Fprintf(out, "  %-13s %s\n", s.Stage, s.Output)
		}
	}
	return nil
}

func runBatch(cmd *cobra.Command, path string, checkAccent bool, log *slog.Logger) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open batch file: %w", err)
		}
		defer f.Close()
		r = f
	}

	lines, err := ipauk.ReadLines(r)
	if err != nil {
		return fmt.Errorf("batch file %s: %w", path, err)
	}

	opts := ipauk.BatchOptions{CheckAccent: checkAccent, Workers: viper.GetInt(keyWorkers)}
	log.Debug("batch started", slog.Int("lines", len(lines)), slog.Int("workers", opts.Workers))

	results := ipauk.TranscribeAll(cmd.Context(), lines, opts)
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(errOut, "%s: %v\n", res.Text, res.Err)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", res.Text, res.IPA)
	}

	log.Info("batch finished", slog.Int("lines", len(results)), slog.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(results))
	}
	return nil
}
