package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"devcheck/internal/config"
	"devcheck/internal/doctor"
	"devcheck/internal/system"
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("config", "c", "", "path to write the catalog to")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter tools catalog",
	Long:  "Interactively picks tools from the built-in set and writes a catalog file to check them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			dir, err := config.Dir()
			if err != nil {
				return err
			}
			path = filepath.Join(dir, "tools.json")
		}

		selected := make([]string, 0, len(config.KnownTools))
		opts := make([]huh.Option[string], 0, len(config.KnownTools))
		for _, t := range config.KnownTools {
			label := fmt.Sprintf("%-26s %s", t.Name, t.Category)
			opts = append(opts, huh.NewOption(label, t.ID))
			if t.Category == doctor.CategoryRequired {
				selected = append(selected, t.ID)
			}
		}

		green := lipgloss.Color("#4d9375")
		theme := huh.ThemeCharm()
		theme.Focused.Title = theme.Focused.Title.Foreground(green).Bold(true)
		theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
		theme.Focused.Base = theme.Focused.Base.BorderForeground(green)

		form := huh.NewForm(huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Tools to check").
				Description("Space toggles, enter confirms.").
				Options(opts...).
				Value(&selected),
		)).WithTheme(theme)
		if err := form.Run(); err != nil {
			return err
		}

		keep := make(map[string]bool, len(selected))
		for _, id := range selected {
			keep[id] = true
		}
		cat := config.Catalog{
			Version: "1.0.0",
			SystemRequirements: doctor.Requirements{
				MinOSVersion:  "13.0",
				Architectures: []string{"arm64", "x86_64"},
			},
		}
		for _, t := range config.KnownTools {
			if keep[t.ID] {
				cat.Tools = append(cat.Tools, t)
			}
		}
		if err := config.Save(cat, path); err != nil {
			return err
		}
		system.Logger.Info("catalog written", "path", path, "tools", len(cat.Tools))
		return nil
	},
}
