package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(12)
	valStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func newEnumerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enumerate <config.toml>",
		Short: "Enumerate an orbit and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := LoadConfig(args[0])
			if err != nil {
				return err
			}
			budget, err := cfg.runBudget()
			if err != nil {
				return err
			}

			a, err := BuildAction(cfg, logger)
			if err != nil {
				return err
			}

			logger.Info("enumerating", "side", a.Side(), "degree", cfg.Degree,
				"seeds", len(cfg.Seeds), "generators", a.NumberOfGenerators())
			if budget > 0 {
				a.RunFor(budget)
			} else {
				a.Run()
			}

			state := "stopped"
			if a.Finished() {
				state = "complete"
			}
			var b strings.Builder
			b.WriteString(titleStyle.Render("orbit summary") + "\n")
			writeRow(&b, "side", a.Side().String())
			writeRow(&b, "generators", fmt.Sprint(a.NumberOfGenerators()))
			writeRow(&b, "points", fmt.Sprint(a.CurrentSize()))
			writeRow(&b, "state", state)
			if a.Finished() {
				n, err := a.NumberOfSCC()
				if err != nil {
					return err
				}
				writeRow(&b, "components", fmt.Sprint(n))
			}
			cmd.Println(b.String())
			return nil
		},
	}
}

func writeRow(b *strings.Builder, key, val string) {
	b.WriteString(keyStyle.Render(key))
	b.WriteString(valStyle.Render(val))
	b.WriteString("\n")
}
