// Package cli implements catalogctl, which runs catalog queries against a
// fixture directory without starting the HTTP server.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Inspect the ROM catalog built from fixture files",
		Long: `catalogctl loads the <platform>_roms.json fixtures the same way the
server does and prints query results as indented JSON.

Without --data-dir the fixture directory is resolved from DATA_DIR and the
usual fallback locations.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("data-dir", "", "Fixture directory (default: resolved like the server)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Loader log level written to stderr")

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories in fixture order",
		Args:  cobra.NoArgs,
		RunE:  RunCategories,
	}

	categoryCmd := &cobra.Command{
		Use:   "category <id>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE:  RunCategory,
	}

	gamesCmd := &cobra.Command{
		Use:   "games",
		Short: "Filter, sort and paginate games",
		Args:  cobra.NoArgs,
		RunE:  RunGames,
	}
	gamesCmd.Flags().String("category-id", "", "Exact category id, e.g. nintendo-64-roms")
	gamesCmd.Flags().String("category", "", "Genre label, case-insensitive")
	gamesCmd.Flags().String("console", "", "Console code, case-insensitive")
	gamesCmd.Flags().String("search", "", "Substring of title or platform")
	gamesCmd.Flags().String("sort", "", "Sort key: downloads|rating|year|title")
	gamesCmd.Flags().Int("page", 0, "1-based page (needs --limit)")
	gamesCmd.Flags().Int("limit", 0, "Page size (needs --page)")

	gameCmd := &cobra.Command{
		Use:   "game <id>",
		Short: "Show one game by id",
		Args:  cobra.ExactArgs(1),
		RunE:  RunGame,
	}

	romCmd := &cobra.Command{
		Use:   "rom <platform> <slug>",
		Short: "Resolve a /roms/<platform>/<slug> URL to a game",
		Args:  cobra.ExactArgs(2),
		RunE:  RunRom,
	}

	popularCmd := &cobra.Command{
		Use:   "popular",
		Short: "List the most downloaded games",
		Args:  cobra.NoArgs,
		RunE:  RunPopular,
	}
	popularCmd.Flags().Int("limit", 4, "Number of games")

	consolesCmd := &cobra.Command{
		Use:   "consoles",
		Short: "List distinct console codes",
		Args:  cobra.NoArgs,
		RunE:  RunConsoles,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog summary statistics",
		Args:  cobra.NoArgs,
		RunE:  RunStats,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "catalogctl %s\n", version)
		},
	}

	rootCmd.AddCommand(
		categoriesCmd,
		categoryCmd,
		gamesCmd,
		gameCmd,
		romCmd,
		popularCmd,
		consolesCmd,
		statsCmd,
		versionCmd,
	)

	return rootCmd
}
