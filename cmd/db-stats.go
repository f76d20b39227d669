package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jon4hz/surfcast/internal/config"
	"github.com/jon4hz/surfcast/internal/database"
)

var dbStatsCmd = &cobra.Command{
	Use:   "db-stats",
	Short: "Show database statistics",
	Long:  `Display statistics about registered users and favorite spots.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, err := database.New(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close() //nolint:errcheck

		users, err := db.CountUsers(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}

		favorites, err := db.CountFavorites(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to count favorites: %w", err)
		}

		fmt.Println("Database Statistics:")
		fmt.Printf("Registered Users: %d\n", users)
		fmt.Printf("Favorite Spots: %d\n", favorites)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbStatsCmd)
}
