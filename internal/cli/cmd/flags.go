package cmd

import (
	"github.com/spf13/pflag"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/cli"
	"github.com/bnema/fontstack/internal/domain/entity"
)

// stackFlags selects the session of a command.
type stackFlags struct {
	document         string
	profile          string
	fontsDir         string
	primary          string
	fallbacks        []string
	systemFonts      []string
	languageFonts    []string
	primaryOverrides []string
	languages        []string
	primaryLangs     []string
	keepUnresolved   bool
}

func (f *stackFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.document, "doc", "d", "", "configuration document to import")
	fs.StringVarP(&f.profile, "profile", "p", "", "saved profile to load")
	fs.StringVarP(&f.fontsDir, "fonts", "f", "", "font directory (default fonts.directory)")
	fs.StringVar(&f.primary, "primary", "", "primary font file")
	fs.StringSliceVar(&f.fallbacks, "fallback", nil, "fallback font files, in order")
	fs.StringSliceVar(&f.systemFonts, "system", nil, "system font families appended to the stack")
	fs.StringArrayVar(&f.languageFonts, "lang-font", nil, "language font as path=lang[,lang]")
	fs.StringArrayVar(&f.primaryOverrides, "primary-override", nil, "primary replacement as path=lang[,lang]")
	fs.StringSliceVarP(&f.languages, "lang", "l", nil, "languages to configure")
	fs.StringSliceVar(&f.primaryLangs, "primary-lang", nil, "languages rendered with the primary font")
	fs.BoolVar(&f.keepUnresolved, "keep-unresolved", false, "keep document fonts without files as placeholders")
}

func (f *stackFlags) options() (cli.StackOptions, error) {
	langPins, err := cli.ParseLanguagePins(f.languageFonts, entity.CloneLanguageSpecific)
	if err != nil {
		return cli.StackOptions{}, err
	}
	primaryPins, err := cli.ParseLanguagePins(f.primaryOverrides, entity.ClonePrimaryOverride)
	if err != nil {
		return cli.StackOptions{}, err
	}
	return cli.StackOptions{
		Document:       f.document,
		Profile:        f.profile,
		FontsDir:       f.fontsDir,
		Primary:        f.primary,
		Fallbacks:      f.fallbacks,
		SystemFonts:    f.systemFonts,
		LanguagePins:   append(langPins, primaryPins...),
		Languages:      f.languages,
		PrimaryLangs:   f.primaryLangs,
		KeepUnresolved: f.keepUnresolved,
	}, nil
}

// cssFlags turns stylesheet sections off; defaults come from the export
// section of the configuration.
type cssFlags struct {
	noFontFace  bool
	noVariables bool
	noComments  bool
	compact     bool
}

func (f *cssFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.noFontFace, "no-font-face", false, "omit @font-face rules")
	fs.BoolVar(&f.noVariables, "no-vars", false, "omit :root custom properties")
	fs.BoolVar(&f.noComments, "no-comments", false, "omit comments")
	fs.BoolVar(&f.compact, "compact", false, "single-line output")
}

func (f *cssFlags) apply(opts port.CSSOptions) port.CSSOptions {
	if f.noFontFace {
		opts.IncludeFontFace = false
	}
	if f.noVariables {
		opts.UseCSSVariables = false
	}
	if f.noComments {
		opts.IncludeComments = false
	}
	if f.compact {
		opts.PrettyPrint = false
	}
	return opts
}
