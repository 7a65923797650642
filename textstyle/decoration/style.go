package decoration

import (
	"fmt"
	"strconv"
	"strings"

	"gioui.org/font"
	"gioui.org/unit"
	"github.com/chapar-rest/wordmark"
	"github.com/chapar-rest/wordmark/textstyle"
)

// Style is the resolved form of a wordmark.DecorationStyle, ready for
// painting.
type Style struct {
	// Background color of the decorated text.
	Background textstyle.Color
	// Foreground color of the decorated text. Unset keeps the text color.
	Foreground   textstyle.Color
	BorderRadius unit.Dp
	Weight       font.Weight
}

// NewStyle resolves the string values of s. Empty fields keep their zero value.
func NewStyle(s wordmark.DecorationStyle) (*Style, error) {
	style := &Style{}
	var err error

	if s.BackgroundColor != "" {
		if style.Background, err = textstyle.ParseColor(s.BackgroundColor); err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
	}
	if s.ForegroundColor != "" {
		if style.Foreground, err = textstyle.ParseColor(s.ForegroundColor); err != nil {
			return nil, fmt.Errorf("foreground: %w", err)
		}
	}
	if s.BorderRadius != "" {
		if style.BorderRadius, err = parseLength(s.BorderRadius); err != nil {
			return nil, fmt.Errorf("border radius: %w", err)
		}
	}
	if s.FontWeight != "" {
		if style.Weight, err = parseWeight(s.FontWeight); err != nil {
			return nil, fmt.Errorf("font weight: %w", err)
		}
	}

	return style, nil
}

// Bold reports whether the text is drawn heavier than normal.
func (s *Style) Bold() bool {
	return s.Weight >= font.SemiBold
}

// parseLength accepts a unitless number or a px value.
func parseLength(v string) (unit.Dp, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, err
	}
	return unit.Dp(f), nil
}

// parseWeight accepts the CSS keywords and numeric weights 100-900.
func parseWeight(v string) (font.Weight, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "normal":
		return font.Normal, nil
	case "bold":
		return font.Bold, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 100 || n > 900 {
		return 0, fmt.Errorf("invalid weight %q", v)
	}
	// Gio weights are offsets from the CSS normal weight 400.
	return font.Weight(n - 400), nil
}
