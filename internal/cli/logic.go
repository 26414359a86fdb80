package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/fsprime/fsprime/internal/fsprime"
)

func logic(options fsprime.Options) error {
	enableProgress := strings.ToLower(options.Output) != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	var progressHook fsprime.ProgressFunc

	var bar *progressbar.ProgressBar

	switch {
	case enableProgress && options.Staged:
		// Staged mode knows the total byte count once discovery finishes,
		// so a real progress bar is possible. It starts as a spinner and
		// gets its maximum when the totals callback fires. ChangeMax64
		// runs on the traversal goroutine while Set64 runs on the
		// reporter goroutine; progressbar/v3 serializes both behind its
		// internal lock, so no extra synchronization is needed here.
		bar = progressbar.NewOptions64(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Warming"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)

		options.OnTotals = func(_, bytes int64) {
			bar.ChangeMax64(bytes)
		}

		progressHook = func(_, bytes int64) {
			_ = bar.Set64(bytes)
		}
	case enableProgress:
		// Immediate mode has no total to show; print an in-place status
		// line instead. Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Warming… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := fsprime.Run(ctx, options, progressHook)

	// Clear the status line
	if bar != nil {
		_ = bar.Finish()
	} else if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(result, os.Stdout)
	case "table":
		return PrintReport(result, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
