package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/fontstack/internal/cli/styles"
)

var systemFontsFilter string

var systemFontsCmd = &cobra.Command{
	Use:   "system-fonts [family...]",
	Short: "List installed font families or check some of them",
	Long: `Without arguments, list the font families fontconfig reports. With
arguments, report whether each family can be rendered locally; generic CSS
families always can.`,
	RunE: runSystemFonts,
}

func init() {
	rootCmd.AddCommand(systemFontsCmd)
	systemFontsCmd.Flags().StringVar(&systemFontsFilter, "filter", "", "only families containing this text")
}

func runSystemFonts(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	r := styles.NewSystemFontsRenderer(a.Theme)
	ctx := a.Ctx()

	if !a.Detector.IsAvailable(ctx) {
		fmt.Fprintln(cmd.ErrOrStderr(), r.RenderUnavailable())
		return nil
	}

	if len(args) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), r.RenderCheck(args, func(family string) bool {
			return a.Detector.IsInstalled(ctx, family)
		}))
		return nil
	}

	families, err := a.Detector.GetAvailableFonts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list system fonts: %w", err)
	}
	if systemFontsFilter != "" {
		needle := strings.ToLower(systemFontsFilter)
		filtered := families[:0:0]
		for _, f := range families {
			if strings.Contains(strings.ToLower(f), needle) {
				filtered = append(filtered, f)
			}
		}
		families = filtered
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.RenderList(families))
	return nil
}
