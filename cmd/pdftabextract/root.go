package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/pdftabextract"
	"github.com/tsawler/pdftabextract/internal/config"
	"github.com/tsawler/pdftabextract/internal/output"
)

// app carries the state shared by all subcommands after flag parsing.
type app struct {
	v       *viper.Viper
	cfgFile string
	pages   []int

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "pdftabextract",
		Short: "Inspect the text boxes of pdftohtml XML documents",
		Long: `pdftabextract reads page-collection XML documents as written by
pdftohtml -xml and answers spatial questions about their text boxes:

  - which texts form the page body once header and footer bands are cut
  - how a page splits into a left and a right column
  - which texts sit nearest to the page corners

Documents can be read from local paths or any URL supported by viant/afs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./config.yaml or ~/.pdftabextract/config.yaml)")
	flags.IntSliceVar(&a.pages, "pages", nil, "page numbers to process (default: all)")
	flags.StringP("output", "o", "yaml", "output format: yaml or json")
	flags.Float64("header-ratio", 0.0, "header cutoff as a fraction of the page height")
	flags.Float64("footer-ratio", 1.0, "footer cutoff as a fraction of the page height")
	flags.Float64("divide-ratio", 0.0, "split pages at this fraction of the width (0: no split)")
	flags.Bool("normalize", false, "normalize text values to Unicode NFC")
	flags.Bool("strict", false, "fail on duplicate page numbers")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")

	for key, flag := range map[string]string{
		"output":       "output",
		"header_ratio": "header-ratio",
		"footer_ratio": "footer-ratio",
		"divide_ratio": "divide-ratio",
		"normalize":    "normalize",
		"strict":       "strict",
		"log_level":    "log-level",
		"log_format":   "log-format",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(
		newPagesCmd(a),
		newBodyCmd(a),
		newSplitCmd(a),
		newCornersCmd(a),
		newShiftCmd(a),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// extractor configures an Extractor for URL from the loaded configuration.
func (a *app) extractor(URL string, split bool) *pdftabextract.Extractor {
	ext := pdftabextract.Open(URL).
		Logger(a.logger).
		Pages(a.pages...).
		ExcludeHeader(a.cfg.HeaderRatio).
		ExcludeFooter(a.cfg.FooterRatio)
	if split && a.cfg.DivideRatio > 0 {
		ext = ext.SplitColumns(a.cfg.DivideRatio)
	}
	if a.cfg.Normalize {
		ext = ext.NormalizeUnicode()
	}
	if a.cfg.Strict {
		ext = ext.Strict()
	}
	return ext
}

func (a *app) print(cmd *cobra.Command, data any) error {
	return output.To(cmd.OutOrStdout(), output.ParseFormat(a.cfg.Output), data)
}
