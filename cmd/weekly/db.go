package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TheoAcker12/weekly-scheduler/internal/config"
	"github.com/TheoAcker12/weekly-scheduler/internal/database"
	"github.com/TheoAcker12/weekly-scheduler/internal/datasync"
	"github.com/TheoAcker12/weekly-scheduler/internal/store"
	"github.com/TheoAcker12/weekly-scheduler/schemas"
)

func newDBCommand() *cobra.Command {
	dbCommand := &cobra.Command{
		Use:   "db",
		Short: "Database commands",
	}

	dbCommand.AddCommand(newDBInitCommand())
	dbCommand.AddCommand(newDBImportCommand())
	dbCommand.AddCommand(newDBExportCommand())

	return dbCommand
}

func newDBInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the tables of a SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.Database.Driver != config.DriverSQLite {
				return fmt.Errorf("db init supports the %s driver only, got %q", config.DriverSQLite, cfg.Database.Driver)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			if err := database.ApplySchema(cmd.Context(), db, schemas.SQLite); err != nil {
				return fmt.Errorf("database.ApplySchema > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema created in %s\n", cfg.Database.Path)
			return nil
		},
	}
}

func newDBImportCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the database contents with the YAML data files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			importer := datasync.NewImporter(
				store.NewYAMLRepository(cfg.YAML.CategoriesFile, cfg.YAML.SchedulesFile),
				store.NewDBRepository(db),
				cmd.OutOrStdout(),
			)
			result, err := importer.Import(cmd.Context(), datasync.ImportOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("importer.Import > %w", err)
			}
			if dryRun {
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d categories and %d schedules\n", result.Categories, result.Schedules)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be imported without writing")
	return cmd
}

func newDBExportCommand() *cobra.Command {
	var categoriesFile, schedulesFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configured data source to YAML data files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			source, closeSource, err := store.New(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("store.New > %w", err)
			}
			defer func() {
				_ = closeSource()
			}()

			categoriesOut, err := os.Create(categoriesFile)
			if err != nil {
				return fmt.Errorf("os.Create(%s) > %w", categoriesFile, err)
			}
			defer func() {
				_ = categoriesOut.Close()
			}()
			schedulesOut, err := os.Create(schedulesFile)
			if err != nil {
				return fmt.Errorf("os.Create(%s) > %w", schedulesFile, err)
			}
			defer func() {
				_ = schedulesOut.Close()
			}()

			snapshot, err := datasync.NewExporter(source).Export(cmd.Context(), categoriesOut, schedulesOut)
			if err != nil {
				return fmt.Errorf("exporter.Export > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d categories to %s and %d schedules to %s\n",
				len(snapshot.Categories), categoriesFile, len(snapshot.Schedules), schedulesFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&categoriesFile, "categories-file", "categories.yml", "Output file for categories")
	cmd.Flags().StringVar(&schedulesFile, "schedules-file", "schedules.yml", "Output file for schedules")
	return cmd
}
