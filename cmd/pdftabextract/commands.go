package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdftabextract/geom"
	"github.com/tsawler/pdftabextract/internal/output"
	"github.com/tsawler/pdftabextract/layout"
)

func newPagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pages URL",
		Short: "List pages with their size and number of texts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.extractor(args[0], false).Extract(cmd.Context())
			if err != nil {
				return err
			}
			records := make([]output.PageRecord, 0, len(result.Views))
			for _, v := range result.Views {
				records = append(records, output.NewPageRecord(result.Pages[v.Number], false))
			}
			return a.print(cmd, records)
		},
	}
}

func newBodyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "body URL",
		Short: "Print the texts between the header and footer cutoffs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.extractor(args[0], true).Extract(cmd.Context())
			if err != nil {
				return err
			}
			records := make([]output.PageRecord, 0, len(result.Views))
			for _, v := range result.Views {
				records = append(records, output.NewPageRecord(v, true))
			}
			return a.print(cmd, records)
		},
	}
}

func newSplitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "split URL",
		Short: "Divide pages into left and right subpages",
		Long: `Divide every page at divide-ratio * page width. Texts whose right edge
lies on or left of the divider form the left subpage, all others the right one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.DivideRatio == 0 {
				return errors.New("split needs --divide-ratio")
			}
			result, err := a.extractor(args[0], true).Extract(cmd.Context())
			if err != nil {
				return err
			}
			records := make([]output.PageRecord, 0, len(result.Views))
			for _, v := range result.Views {
				records = append(records, output.NewPageRecord(v, true))
			}
			return a.print(cmd, records)
		},
	}
}

func newCornersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "corners URL",
		Short: "Find the texts nearest to the four page corners",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.extractor(args[0], true).Extract(cmd.Context())
			if err != nil {
				return err
			}
			corners := result.Corners(layout.CornerPredicates{})
			records := make([]output.CornerRecord, len(corners))
			for i, c := range corners {
				records[i] = output.NewCornerRecord(result.Views[i], c)
			}
			return a.print(cmd, records)
		},
	}
}

func newShiftCmd(a *app) *cobra.Command {
	var (
		page   int
		dx, dy float64
		out    string
	)

	cmd := &cobra.Command{
		Use:   "shift URL",
		Short: "Move all texts of a page and save the document",
		Long: `Move every text on a page by (dx, dy) and write the new positions,
rounded to integers, back into the document saved at --out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("shift needs --out")
			}
			result, err := a.extractor(args[0], false).Pages(page).Extract(cmd.Context())
			if err != nil {
				return err
			}

			p := result.Pages[page]
			for _, t := range p.Texts {
				if err := t.UpdatePosition(t.TopLeft.Translate(dx, dy), result.Document); err != nil {
					return fmt.Errorf("page %d: %w", page, err)
				}
			}
			if err := result.Save(cmd.Context(), nil, out); err != nil {
				return err
			}
			a.logger.Info("document saved", "page", page, "texts", len(p.Texts), "url", out,
				"offset", geom.Pt(dx, dy))
			return a.print(cmd, output.NewPageRecord(p, true))
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number to move")
	cmd.Flags().Float64Var(&dx, "dx", 0, "horizontal offset")
	cmd.Flags().Float64Var(&dy, "dy", 0, "vertical offset")
	cmd.Flags().StringVar(&out, "out", "", "URL to save the document to")
	return cmd
}
