package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fcavalcantirj/solvr-ui/internal/config"
	"github.com/fcavalcantirj/solvr-ui/internal/errors"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default solvr-ui.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(configDir, config.ConfigFileName)
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.CategoryCLI, "%s already exists", path).
					WithSuggestion("Pass --force to overwrite it")
			}

			cfg := config.New()
			if err := cfg.SaveTo(path); err != nil {
				return err
			}

			success("Created %s", path)
			info("Set %s to authenticate against %s", cfg.API.KeyEnv, cfg.API.BaseURL)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
