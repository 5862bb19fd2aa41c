package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"store/internal/infra/logfile"
	"store/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const logDateLayout = "2006-01-02"

var (
	filterDate   string
	filterSource string
	filterOut    string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Work with application log files",
}

var logsFilterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Extract the log lines of one day from a log file",
	Long: `Reads the log file given by --source and keeps every line containing --date.
The result is printed to stdout unless --out names a file to write.`,
	Example: `  storectl logs filter --date 2026-10-18
  storectl logs filter --date 2026-10-18 --source /var/log/store.log --out extract.log`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		opts := filterOptions{
			Date:   filterDate,
			Source: filterSource,
			Out:    filterOut,
		}

		summary, err := filterLogs(ctx, opts, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		printSummary(cmd.ErrOrStderr(), summary)

		return nil
	},
}

func init() {
	logsFilterCmd.Flags().StringVar(&filterDate, "date", "", "Day to extract, formatted as YYYY-MM-DD")
	logsFilterCmd.Flags().StringVar(&filterSource, "source", "./store.log", "Log file to read")
	logsFilterCmd.Flags().StringVarP(&filterOut, "out", "o", "", "Write the extract to this file instead of stdout")
	_ = logsFilterCmd.MarkFlagRequired("date")

	logsCmd.AddCommand(logsFilterCmd)
	rootCmd.AddCommand(logsCmd)
}

type filterOptions struct {
	Date   string
	Source string
	Out    string
}

type filterSummary struct {
	Lines    int
	Size     int64
	SHA256   string
	Out      string
	Duration time.Duration
}

func filterLogs(ctx context.Context, opts filterOptions, stdout io.Writer) (*filterSummary, error) {
	if _, err := time.Parse(logDateLayout, opts.Date); err != nil {
		return nil, errors.Errorf("invalid date %q, expected YYYY-MM-DD", opts.Date)
	}

	start := time.Now()

	lines, err := logfile.NewFileSource(opts.Source).Lines(ctx, opts.Date)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", opts.Source)
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	sum, size, err := util.Checksum(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, err
	}

	summary := &filterSummary{
		Lines:  len(lines),
		Size:   size,
		SHA256: sum,
	}

	if opts.Out == "" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return nil, errors.Wrap(err, "failed to write extract")
		}
	} else {
		if dir := filepath.Dir(opts.Out); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrapf(err, "failed to create %s", dir)
			}
		}
		if err := os.WriteFile(opts.Out, buf.Bytes(), 0o600); err != nil {
			return nil, errors.Wrapf(err, "failed to write %s", opts.Out)
		}
		summary.Out = opts.Out
	}

	summary.Duration = time.Since(start)

	return summary, nil
}

func printSummary(w io.Writer, summary *filterSummary) {
	fmt.Fprintf(w, "Matched %d lines (%s) in %s\n", summary.Lines, util.FormatBytes(summary.Size), util.FormatDuration(summary.Duration))
	if summary.Out != "" {
		fmt.Fprintf(w, "  file:   %s\n", summary.Out)
	}
	if verbose {
		fmt.Fprintf(w, "  sha256: %s\n", summary.SHA256)
	}
}
