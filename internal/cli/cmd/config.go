package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/bnema/fontstack/internal/application/usecase"
	"github.com/bnema/fontstack/internal/cli/styles"
	"github.com/bnema/fontstack/internal/infrastructure/config"
)

var (
	configForce   bool
	configJSON    bool
	configSection string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Create, locate, edit and document the configuration file.`,
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write the default configuration file",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: ""},
	RunE:        runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the configuration file path",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: ""},
	RunE:        runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:         "edit",
	Short:       "Open the configuration file in $VISUAL or $EDITOR",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: ""},
	RunE:        runConfigEdit,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every configuration key with its default",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configPathCmd, configEditCmd, configKeysCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configKeysCmd.Flags().BoolVar(&configJSON, "json", false, "print keys as JSON")
	configKeysCmd.Flags().StringVar(&configSection, "section", "", "only keys of one section")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	mgr, err := config.NewManager()
	if err != nil {
		return err
	}
	path, created, err := mgr.InitFile(configForce)
	if err != nil {
		return err
	}

	r := styles.NewMessageRenderer(styles.NewTheme())
	if !created {
		fmt.Fprintln(cmd.OutOrStdout(), r.RenderWarning("config already exists, use --force to overwrite: "+path))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.RenderSuccess("wrote "+path))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	path, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor defined: set $VISUAL or $EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out, err := a.ConfigSchemaUC.Execute(a.Ctx(), usecase.GetConfigSchemaInput{Section: configSection})
	if err != nil {
		return err
	}

	r := styles.NewConfigSchemaRenderer(a.Theme)
	if configJSON {
		text, err := r.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.Render(out.Keys))
	return nil
}
