package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/fsprime/fsprime/internal/fsprime"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	// MiB is one mebibyte in bytes.
	MiB = 1 << 20
)

// PrintJSON outputs the run result in JSON format.
func PrintJSON(result *fsprime.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintReport outputs the run result in the fixed human-readable form:
// directories scanned, files processed, bytes read in MiB, access errors,
// elapsed seconds.
func PrintReport(result *fsprime.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintf(w, "Directories scanned:\t%s\n", humanize.Comma(result.DirectoriesScanned))
	fmt.Fprintf(w, "Files processed:\t%s\n", humanize.Comma(result.FilesProcessed))
	fmt.Fprintf(w, "Bytes read:\t%.2f MiB\n", float64(result.BytesRead)/MiB)
	fmt.Fprintf(w, "Access errors:\t%s\n", humanize.Comma(result.AccessErrors))
	fmt.Fprintf(w, "Elapsed:\t%.2f s\n", result.Elapsed.Seconds())

	return w.Flush()
}
