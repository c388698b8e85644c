package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/fontstack/internal/cli/styles"
	"github.com/bnema/fontstack/internal/infrastructure/config"
	"github.com/bnema/fontstack/internal/infrastructure/document"
)

var (
	exportStack  stackFlags
	exportOutput string
	schemaConfig bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stack as a configuration document",
	Long: `Write the stack as a portable JSON document. Fonts are referenced by
file name and family; binaries are never embedded.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var schemaCmd = &cobra.Command{
	Use:         "schema",
	Short:       "Print the JSON schema of configuration documents",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: ""},
	RunE:        runSchema,
}

func init() {
	rootCmd.AddCommand(exportCmd, schemaCmd)
	exportStack.register(exportCmd.Flags())
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write the document to a file instead of stdout")
	schemaCmd.Flags().BoolVar(&schemaConfig, "config", false, "print the schema of config.toml instead")
}

func runExport(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	opts, err := exportStack.options()
	if err != nil {
		return err
	}
	built, err := a.BuildSession(a.Ctx(), opts)
	if err != nil {
		return err
	}
	printNotices(cmd.ErrOrStderr(), a.Theme, built.Notices)

	data, err := a.DocumentUC.Export(a.Ctx(), built.Session)
	if err != nil {
		return err
	}
	if exportOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	const docPerm = 0o644
	if err := os.WriteFile(exportOutput, data, docPerm); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), styles.NewMessageRenderer(a.Theme).RenderSuccess("wrote "+exportOutput))
	return nil
}

func runSchema(cmd *cobra.Command, _ []string) error {
	var (
		data []byte
		err  error
	)
	if schemaConfig {
		data, err = config.NewSchemaProvider().JSONSchema()
	} else {
		data, err = document.SchemaJSON()
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
