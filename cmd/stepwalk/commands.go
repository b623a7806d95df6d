package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/steps/pkg/steps"
	"github.com/BrandonKowalski/steps/pkg/steps/config"
	"github.com/BrandonKowalski/steps/pkg/steps/locale"
)

func loadDefinition(path string) (*config.Definition, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func runCmd(debug *bool) *cobra.Command {
	var (
		configPath string
		lang       string
		device     string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Walk through the steps of a definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loadDefinition(configPath)
			if err != nil {
				return err
			}
			def.ApplyEnv()
			if lang != "" {
				def.Settings.Locale = lang
			}
			configureLogging(def.Settings.LogPath, def.Settings.LogLevel, *debug)

			catalog, err := locale.New(def.Settings.Locale)
			if err != nil {
				return err
			}
			steps.GetLogger().Debug("locale selected", "language", catalog.Language().String())
			for _, p := range def.MessagePaths() {
				if err := catalog.LoadFile(p); err != nil {
					return err
				}
			}

			w, err := newWalker(def, catalog, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if device != "" {
				stop, err := attachDevice(cmd.Context(), device, w)
				if err != nil {
					return err
				}
				defer stop()
			}

			w.println(mutedStyle.Render("type help for commands"))
			return w.run(cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Definition file (.toml or .yaml); defaults to a built-in example")
	cmd.Flags().StringVar(&lang, "lang", "", "Locale for titles and messages, e.g. es")
	cmd.Flags().StringVar(&device, "device", "", "Input device to navigate with, e.g. /dev/input/event1 (linux only)")
	return cmd
}

func checkCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a definition file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			def, err := config.Load(configPath)
			if err != nil {
				return err
			}
			initial := def.Initial
			if initial == "" {
				initial = def.Steps[0].Name
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, successMsg("%s: %d steps", filepath.Base(configPath), len(def.Steps)))
			fmt.Fprintln(out, "  "+stepList(def.StepNames(), initial))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Definition file (.toml or .yaml)")
	return cmd
}

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write an example definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("create definition dir: %w", err)
			}
			if err := os.WriteFile(path, config.DefaultTOML(), 0644); err != nil {
				return fmt.Errorf("write definition: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), successMsg("wrote %s", path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
