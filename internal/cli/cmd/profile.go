package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/fontstack/internal/cli/styles"
)

var (
	profileSaveStack stackFlags
	profileLoadStack stackFlags
	profileOutput    string
	profileRaw       bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved stacks",
	Long:  `Save stacks under a name in the profile database and load them back.`,
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the stack as a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSave,
}

var profileLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Link a profile to font files and print it as a document",
	Long: `Load a profile, link its fonts against the font files and print the
resulting document. With --raw the stored document is printed unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileLoad,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSaveCmd, profileLoadCmd, profileListCmd, profileDeleteCmd)

	profileSaveStack.register(profileSaveCmd.Flags())
	profileLoadStack.register(profileLoadCmd.Flags())
	profileLoadCmd.Flags().StringVarP(&profileOutput, "output", "o", "", "write the document to a file instead of stdout")
	profileLoadCmd.Flags().BoolVar(&profileRaw, "raw", false, "print the stored document without linking")
}

func runProfileSave(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	opts, err := profileSaveStack.options()
	if err != nil {
		return err
	}
	built, err := a.BuildSession(a.Ctx(), opts)
	if err != nil {
		return err
	}
	printNotices(cmd.ErrOrStderr(), a.Theme, built.Notices)

	profile, err := a.ProfilesUC.Save(a.Ctx(), args[0], built.Session)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewMessageRenderer(a.Theme).RenderSuccess("saved profile "+profile.Name))
	return nil
}

func runProfileLoad(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	var data []byte
	if profileRaw {
		data, err = a.ProfilesUC.Document(a.Ctx(), args[0])
	} else {
		opts, optErr := profileLoadStack.options()
		if optErr != nil {
			return optErr
		}
		opts.Profile = args[0]
		built, buildErr := a.BuildSession(a.Ctx(), opts)
		if buildErr != nil {
			return buildErr
		}
		printNotices(cmd.ErrOrStderr(), a.Theme, built.Notices)
		data, err = a.DocumentUC.Export(a.Ctx(), built.Session)
	}
	if err != nil {
		return err
	}

	if profileOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	const docPerm = 0o644
	if err := os.WriteFile(profileOutput, data, docPerm); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), styles.NewMessageRenderer(a.Theme).RenderSuccess("wrote "+profileOutput))
	return nil
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	profiles, err := a.ProfilesUC.List(a.Ctx())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewProfileRenderer(a.Theme).RenderList(profiles))
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := a.ProfilesUC.Delete(a.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewMessageRenderer(a.Theme).RenderSuccess("deleted profile "+args[0]))
	return nil
}
