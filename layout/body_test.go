package layout

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestBodyTexts_DefaultKeepsAll(t *testing.T) {
	page := makePage(1000, 1000,
		makeText(10, 0, 100, 20, "top edge"),
		makeText(10, 500, 100, 20, "middle"),
		makeText(10, 980, 100, 20, "bottom edge"),
	)

	var buf bytes.Buffer
	config := DefaultBodyConfig()
	config.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	body, err := BodyTexts(page, config)
	if err != nil {
		t.Fatalf("BodyTexts() error: %v", err)
	}
	if len(body) != len(page.Texts) {
		t.Fatalf("expected all %d texts, got %d", len(page.Texts), len(body))
	}
	for i := range body {
		if body[i] != page.Texts[i] {
			t.Errorf("text %d differs or is out of order", i)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("expected no cutoff notice for default ratios, got %q", buf.String())
	}
}

func TestBodyTexts_Cutoffs(t *testing.T) {
	page := makePage(1000, 1000,
		makeText(10, 20, 100, 20, "header"),
		makeText(10, 100, 100, 20, "first body line"),
		makeText(10, 890, 100, 10, "last body line"),
		makeText(10, 950, 100, 20, "footer"),
		makeText(10, 95, 100, 20, "straddles header line"),
	)

	var buf bytes.Buffer
	config := BodyConfig{
		HeaderRatio: 0.1,
		FooterRatio: 0.9,
		Logger:      slog.New(slog.NewTextHandler(&buf, nil)),
	}

	body, err := BodyTexts(page, config)
	if err != nil {
		t.Fatalf("BodyTexts() error: %v", err)
	}
	got := strings.Join(values(body), "|")
	if got != "first body line|last body line" {
		t.Errorf("BodyTexts() = %s", got)
	}
	if len(page.Texts) != 5 {
		t.Errorf("page texts were modified")
	}

	out := buf.String()
	if !strings.Contains(out, `msg="header cutoff"`) || !strings.Contains(out, "cutoff=100") {
		t.Errorf("missing header notice: %s", out)
	}
	if !strings.Contains(out, `msg="footer cutoff"`) || !strings.Contains(out, "cutoff=900") {
		t.Errorf("missing footer notice: %s", out)
	}
	if !strings.Contains(out, "page=1") || !strings.Contains(out, "subpage=none") {
		t.Errorf("notice not keyed by page: %s", out)
	}
}

func TestBodyTexts_InvalidRatios(t *testing.T) {
	page := makePage(100, 100)

	tests := []struct {
		name           string
		header, footer float64
	}{
		{"negative header", -0.1, 1},
		{"header above one", 1.5, 1},
		{"negative footer", 0, -1},
		{"nan footer", 0, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BodyTexts(page, BodyConfig{HeaderRatio: tt.header, FooterRatio: tt.footer})
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestBodyTexts_Subpage(t *testing.T) {
	page := makePage(1000, 1000,
		makeText(600, 10, 50, 10, "right header"),
		makeText(600, 500, 50, 10, "right body"),
	)
	_, right, err := DivideHorizontally(page, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	body, err := BodyTexts(right, BodyConfig{
		HeaderRatio: 0.05,
		FooterRatio: 1,
		Logger:      slog.New(slog.NewTextHandler(&buf, nil)),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := values(body); len(got) != 1 || got[0] != "right body" {
		t.Errorf("BodyTexts() = %v", got)
	}
	if !strings.Contains(buf.String(), "subpage=right") {
		t.Errorf("notice should name the subpage: %s", buf.String())
	}
}
