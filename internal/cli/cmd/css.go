package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/fontstack/internal/cli"
	"github.com/bnema/fontstack/internal/cli/styles"
	"github.com/bnema/fontstack/internal/infrastructure/config"
	"github.com/bnema/fontstack/internal/logging"
)

var (
	cssStack  stackFlags
	cssOpts   cssFlags
	cssOutput string
	cssWatch  bool
)

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Generate the stylesheet of the font stack",
	Long: `Generate @font-face rules, the font-family stack, heading styles and
per-language rules for the current stack.

With --watch the stylesheet is regenerated whenever the document, the
font files or the configuration file change.`,
	Example: `  fontstack css --fonts ./fonts --primary ./fonts/Inter.ttf -o fonts.css
  fontstack css --doc stack.json --fonts ./fonts --watch -o fonts.css`,
	Args: cobra.NoArgs,
	RunE: runCSS,
}

func init() {
	rootCmd.AddCommand(cssCmd)
	cssStack.register(cssCmd.Flags())
	cssOpts.register(cssCmd.Flags())
	cssCmd.Flags().StringVarP(&cssOutput, "output", "o", "", "write the stylesheet to a file instead of stdout")
	cssCmd.Flags().BoolVarP(&cssWatch, "watch", "w", false, "regenerate on changes")
}

func runCSS(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	opts, err := cssStack.options()
	if err != nil {
		return err
	}

	if !cssWatch {
		return generateCSS(a.Ctx(), a, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
	if cssOutput == "" {
		return fmt.Errorf("--watch needs --output")
	}
	return watchCSS(a, opts, cmd.ErrOrStderr())
}

func generateCSS(ctx context.Context, a *cli.App, opts cli.StackOptions, stdout, stderr io.Writer) error {
	built, err := a.BuildSession(ctx, opts)
	if err != nil {
		return err
	}
	printNotices(stderr, a.Theme, built.Notices)

	css, err := a.CSSUC.Execute(ctx, built.Session, cssOpts.apply(a.Config.CSSOptions()))
	if err != nil {
		return err
	}

	if cssOutput == "" {
		_, err = io.WriteString(stdout, css)
		return err
	}
	const cssPerm = 0o644
	if err := os.WriteFile(cssOutput, []byte(css), cssPerm); err != nil {
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	fmt.Fprintln(stderr, styles.NewMessageRenderer(a.Theme).RenderSuccess("wrote "+cssOutput))
	return nil
}

func watchCSS(a *cli.App, opts cli.StackOptions, stderr io.Writer) error {
	ctx, stop := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(ctx, "watch")

	fontsDir := opts.FontsDir
	if fontsDir == "" {
		fontsDir = a.Config.Fonts.Directory
	}
	paths := append([]string{opts.Document, fontsDir, opts.Primary}, opts.Fallbacks...)
	for _, pin := range opts.LanguagePins {
		paths = append(paths, pin.Path)
	}

	w, err := cli.NewWatcher(paths, cli.DefaultDebounce)
	if err != nil {
		return err
	}

	if a.ConfigManager != nil {
		a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			a.Reconfigure(cfg)
			w.Trigger()
		})
		if err := a.ConfigManager.Watch(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("config file is not watched")
		}
	}

	renderer := styles.NewMessageRenderer(a.Theme)
	rebuild := func(ctx context.Context) error {
		err := generateCSS(ctx, a, opts, io.Discard, stderr)
		if err != nil {
			fmt.Fprintln(stderr, renderer.RenderError(err))
		}
		return err
	}
	if err := rebuild(ctx); err != nil {
		logging.FromContext(ctx).Debug().Msg("initial build failed, waiting for changes")
	}

	fmt.Fprintln(stderr, renderer.RenderPath("watching", cssOutput))
	return w.Run(ctx, rebuild)
}

func printNotices(w io.Writer, theme *styles.Theme, n cli.Notices) {
	r := styles.NewMessageRenderer(theme)
	var blocks []string
	blocks = append(blocks, r.RenderParseFailures(n.ParseFailures))
	for _, b := range n.Batches {
		blocks = append(blocks, r.RenderBatch(b))
	}
	for _, family := range n.NotInstalled {
		blocks = append(blocks, r.RenderWarning(family+" is not installed locally"))
	}
	if n.Report != nil {
		blocks = append(blocks, r.RenderImportReport(*n.Report))
	}
	for _, b := range blocks {
		if b != "" {
			fmt.Fprintln(w, b)
		}
	}
}
