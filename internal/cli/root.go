// Package cli implements the polycube command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Global flags
var (
	workers  int
	useCache bool
	dbPath   string
	quiet    bool
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "polycube",
	Short: "Polycube enumerator",
	Long: `Polycube enumerator - counts all distinct polycubes of a given size.

Polycubes are unions of unit cubes connected face to face. Two polycubes
are counted once when one is a rotation of the other; mirror images that
are not rotations stay distinct. Each size is grown from the complete set
of the previous size, with optional on-disk caching of finished sets.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "Growth workers per pass (default: all CPUs)")
	rootCmd.PersistentFlags().BoolVar(&useCache, "cache", false, "Cache finished sizes on disk")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Cache database path (default: ~/.polycube/shapes.db)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
}
