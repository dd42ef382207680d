package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polycube/enumerate"
)

var tableCmd = &cobra.Command{
	Use:   "table N",
	Short: "Print polycube counts for every size up to N",
	Long: `Print a table of distinct polycube counts for sizes 1 through N,
with the time spent on each size. Honors --cache, --workers and --quiet.`,
	Args: cobra.ExactArgs(1),
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", args[0], err)
	}

	opts, closeStore, err := buildOptions()
	if err != nil {
		return err
	}
	defer closeStore()
	// Progress lines would interleave with the table rows.
	opts.Progress = nil

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "n\tshapes\telapsed\t")

	set, err := enumerate.Enumerate(1, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(tw, "1\t%d\t%s\t\n", set.Len(), "-")

	for size := 2; size <= n; size++ {
		start := time.Now()
		set, err = enumerate.Resume(size, set, opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t\n", size, set.Len(), time.Since(start).Round(time.Millisecond))
	}

	return tw.Flush()
}
