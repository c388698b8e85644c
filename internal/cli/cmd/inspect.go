package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fontstack/internal/cli/styles"
	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/domain/service"
)

var (
	resolveStack stackFlags
	groupsStack  stackFlags
	inspectStack stackFlags
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [lang...]",
	Short: "Show the font, scale and line height of each language",
	Long: `Resolve languages against the stack. Without arguments every configured
language and every primary language is shown.`,
	Example: `  fontstack resolve --fonts ./fonts ja zh-TW ar`,
	RunE:    runResolve,
}

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Show the stack grouped by role",
	Args:  cobra.NoArgs,
	RunE:  runGroups,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List the fonts of the stack with their metadata",
	Args:  cobra.NoArgs,
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(resolveCmd, groupsCmd, inspectCmd)
	resolveStack.register(resolveCmd.Flags())
	groupsStack.register(groupsCmd.Flags())
	inspectStack.register(inspectCmd.Flags())
}

func runResolve(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	opts, err := resolveStack.options()
	if err != nil {
		return err
	}
	built, err := a.BuildSession(a.Ctx(), opts)
	if err != nil {
		return err
	}
	printNotices(cmd.ErrOrStderr(), a.Theme, built.Notices)

	langs := make([]entity.LanguageID, 0, len(args))
	for _, arg := range args {
		if lang, ok := a.Catalog.Match(arg); ok {
			langs = append(langs, lang.ID)
		} else {
			langs = append(langs, entity.LanguageID(arg))
		}
	}

	rows := a.InspectUC.Resolve(a.Ctx(), built.Session, langs)
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewStackRenderer(a.Theme).RenderResolutions(rows))
	return nil
}

func runGroups(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	opts, err := groupsStack.options()
	if err != nil {
		return err
	}
	built, err := a.BuildSession(a.Ctx(), opts)
	if err != nil {
		return err
	}
	printNotices(cmd.ErrOrStderr(), a.Theme, built.Notices)

	g := a.InspectUC.Groups(a.Ctx(), built.Session)
	name := func(id entity.LanguageID) string {
		return a.Catalog.Resolve(id).Name
	}
	r := styles.NewStackRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), r.RenderGroups(g, name))
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), r.RenderStack(service.Snapshot(built.Session, a.Catalog).Stack))
	return nil
}

func runInspect(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	opts, err := inspectStack.options()
	if err != nil {
		return err
	}
	built, err := a.BuildSession(a.Ctx(), opts)
	if err != nil {
		return err
	}
	printNotices(cmd.ErrOrStderr(), a.Theme, built.Notices)

	view := a.InspectUC.Visible(a.Ctx(), built.Session)
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewStackRenderer(a.Theme).RenderFonts(view))
	return nil
}
