package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emulatorgames/rom-catalog/internal/config"
	"github.com/emulatorgames/rom-catalog/internal/fixtures"
	"github.com/emulatorgames/rom-catalog/internal/services"
)

func RunCategories(cmd *cobra.Command, args []string) error {
	catalog, err := newCatalogService(cmd)
	if err != nil {
		return err
	}

	categories, err := catalog.GetCategories()
	if err != nil {
		return err
	}
	return printJSON(cmd, categories)
}

func RunCategory(cmd *cobra.Command, args []string) error {
	catalog, err := newCatalogService(cmd)
	if err != nil {
		return err
	}

	category, err := catalog.GetCategory(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return printJSON(cmd, category)
}

func RunGames(cmd *cobra.Command, args []string) error {
	catalog, err := newCatalogService(cmd)
	if err != nil {
		return err
	}

	query, err := gameQueryFromFlags(cmd)
	if err != nil {
		return err
	}

	list, err := catalog.GetGames(query)
	if err != nil {
		return err
	}
	return printJSON(cmd, list)
}

func RunGame(cmd *cobra.Command, args []string) error {
	catalog, err := newCatalogService(cmd)
	if err != nil {
		return err
	}

	game, err := catalog.GetGame(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return printJSON(cmd, game)
}

func RunRom(cmd *cobra.Command, args []string) error {
	catalog, err := newCatalogService(cmd)
	if err != nil {
		return err
	}

	game, err := catalog.GetGameBySlug(args[0], args[1])
	if err != nil {
		return fmt.Errorf("%s/%s: %w", args[0], args[1], err)
	}
	return printJSON(cmd, game)
}

func RunPopular(cmd *cobra.Command, args []string) error {
	catalog, err := newCatalogService(cmd)
	if err != nil {
		return err
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("failed to read --limit flag: %w", err)
	}

	games, err := catalog.GetPopularGames(limit)
	if err != nil {
		return err
	}
	return printJSON(cmd, games)
}

func RunConsoles(cmd *cobra.Command, args []string) error {
	catalog, err := newCatalogService(cmd)
	if err != nil {
		return err
	}

	consoles, err := catalog.GetConsoles()
	if err != nil {
		return err
	}
	return printJSON(cmd, consoles)
}

func RunStats(cmd *cobra.Command, args []string) error {
	catalog, err := newCatalogService(cmd)
	if err != nil {
		return err
	}

	data, err := catalog.GetRomData()
	if err != nil {
		return err
	}
	return printJSON(cmd, data.Stats)
}

func gameQueryFromFlags(cmd *cobra.Command) (services.GameQuery, error) {
	flags := cmd.Flags()
	var query services.GameQuery
	var err error

	for name, target := range map[string]*string{
		"category-id": &query.CategoryID,
		"category":    &query.Category,
		"console":     &query.Console,
		"search":      &query.Search,
	} {
		if *target, err = flags.GetString(name); err != nil {
			return query, fmt.Errorf("failed to read --%s flag: %w", name, err)
		}
	}

	sortBy, err := flags.GetString("sort")
	if err != nil {
		return query, fmt.Errorf("failed to read --sort flag: %w", err)
	}
	query.SortBy = services.SortField(sortBy)

	if query.Page, err = flags.GetInt("page"); err != nil {
		return query, fmt.Errorf("failed to read --page flag: %w", err)
	}
	if query.Limit, err = flags.GetInt("limit"); err != nil {
		return query, fmt.Errorf("failed to read --limit flag: %w", err)
	}
	return query, nil
}

func newCatalogService(cmd *cobra.Command) (*services.CatalogService, error) {
	log, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	dataDir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to read --data-dir flag: %w", err)
	}
	if dataDir == "" {
		candidates := config.CatalogConfig{DataDir: os.Getenv("DATA_DIR")}.DataDirCandidates()
		dataDir = fixtures.ResolveDataDir(candidates, log)
	}

	return services.NewCatalogService(fixtures.NewLoader(dataDir, fixtures.WithLogger(log))), nil
}

func newLogger(cmd *cobra.Command) (*logrus.Logger, error) {
	levelName, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to read --log-level flag: %w", err)
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", levelName, err)
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(level)
	return log, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
