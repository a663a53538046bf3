package layout

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/tsawler/pdftabextract/model"
)

// ErrInvalidArgument is returned for ratios outside their valid range
var ErrInvalidArgument = errors.New("invalid argument")

// BodyConfig holds the header and footer cutoffs for BodyTexts
type BodyConfig struct {
	// HeaderRatio is the fraction of the page height above which texts
	// belong to the header. Default: 0.0 (no header)
	HeaderRatio float64

	// FooterRatio is the fraction of the page height below which texts
	// belong to the footer. Default: 1.0 (no footer)
	FooterRatio float64

	// Logger receives the cutoff notices. Default: slog.Default()
	Logger *slog.Logger
}

// DefaultBodyConfig returns a configuration that keeps the whole page
func DefaultBodyConfig() BodyConfig {
	return BodyConfig{
		HeaderRatio: 0.0,
		FooterRatio: 1.0,
	}
}

// BodyTexts returns the texts of page that lie between the header and footer
// cutoffs: top >= height*HeaderRatio and bottom <= height*FooterRatio.
// The page is not modified. Both ratios must be within [0, 1].
func BodyTexts(page *model.Page, config BodyConfig) ([]*model.Text, error) {
	if err := checkRatio("header ratio", config.HeaderRatio); err != nil {
		return nil, err
	}
	if err := checkRatio("footer ratio", config.FooterRatio); err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	minY := page.Height * config.HeaderRatio
	maxY := page.Height * config.FooterRatio

	if config.HeaderRatio != 0.0 {
		logger.Info("header cutoff", "page", page.Number, "subpage", page.Subpage.String(), "cutoff", minY)
	}
	if config.FooterRatio != 1.0 {
		logger.Info("footer cutoff", "page", page.Number, "subpage", page.Subpage.String(), "cutoff", maxY)
	}

	body := make([]*model.Text, 0, len(page.Texts))
	for _, t := range page.Texts {
		if t.Top >= minY && t.Bottom <= maxY {
			body = append(body, t)
		}
	}
	return body, nil
}

func checkRatio(name string, r float64) error {
	if math.IsNaN(r) || r < 0 || r > 1 {
		return fmt.Errorf("%w: %s %v not in [0, 1]", ErrInvalidArgument, name, r)
	}
	return nil
}
