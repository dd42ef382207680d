package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polycube/cubecache"
	"github.com/katalvlaran/polycube/enumerate"
)

var countLimit int

var countCmd = &cobra.Command{
	Use:   "count N",
	Short: "Count all distinct polycubes of size N",
	Long: `Count all distinct polycubes of size N, up to rotation.

The set for each size is derived from the complete set of the previous
size. With --cache, finished sizes are stored in a SQLite database and
reused on later runs. --limit aborts once a size would hold more shapes
than the given bound, instead of exhausting memory.`,
	Args: cobra.ExactArgs(1),
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().IntVar(&countLimit, "limit", 0, "Abort when a size exceeds this many shapes (0 = unbounded)")
}

func runCount(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", args[0], err)
	}

	opts, closeStore, err := buildOptions()
	if err != nil {
		return err
	}
	defer closeStore()
	opts.MaxShapes = countLimit

	if !quiet {
		fmt.Println(titleStyle.Render(fmt.Sprintf("Enumerating polycubes up to n=%d", n)))
	}

	start := time.Now()
	set, err := enumerate.Enumerate(n, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if !quiet {
		fmt.Println()
	}
	fmt.Printf("%s unique polycube(s) of size %d\n", countStyle.Render(strconv.Itoa(set.Len())), n)
	fmt.Println(dimStyle.Render(fmt.Sprintf("elapsed: %s", elapsed.Round(time.Millisecond))))

	return nil
}

// buildOptions assembles enumerate.Options from the global flags and
// returns a cleanup func for the cache store (a no-op without --cache).
func buildOptions() (enumerate.Options, func(), error) {
	opts := enumerate.DefaultOptions()
	opts.Workers = workers
	closeStore := func() {}

	if useCache {
		path := dbPath
		if path == "" {
			var err error
			if path, err = cubecache.DefaultPath(); err != nil {
				return opts, closeStore, err
			}
		}
		store, err := cubecache.Open(path)
		if err != nil {
			return opts, closeStore, err
		}
		opts.Cache = store
		closeStore = func() { store.Close() }
	}

	if !quiet {
		opts.Progress = printProgress
	}

	return opts, closeStore, nil
}

// printProgress renders a carriage-return percentage line per pass.
func printProgress(p enumerate.Progress) {
	perc := float64(p.Done) / float64(p.Total) * 100
	fmt.Printf("\rGenerating polycubes n=%d: %6.2f%%", p.Size, perc)
	if p.Done == p.Total {
		fmt.Println()
	}
}
