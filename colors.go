package wordmark

import (
	"math/rand/v2"
	"regexp"
)

// PaletteColor is a named entry of the color picker.
type PaletteColor struct {
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

// CustomColorLabel is the picker entry that asks for a hex color instead.
const CustomColorLabel = "Custom color (hex)"

// DefaultPalette lists the colors offered by the color picker.
var DefaultPalette = []PaletteColor{
	{Label: "Yellow", Color: "#ffff99"},
	{Label: "Red", Color: "#ffcccb"},
	{Label: "Green", Color: "#ccffcc"},
	{Label: "Blue", Color: "#ccccff"},
	{Label: "Orange", Color: "#ffcc99"},
	{Label: "Pink", Color: "#ffccff"},
	{Label: "Cyan", Color: "#ccffff"},
	{Label: "Gray", Color: "#dddddd"},
}

// randomColors are the pastels used when the user did not ask for a color.
var randomColors = []string{"#ffff99", "#ffcccb", "#ccffcc", "#ccccff", "#ffcc99"}

var hexColorPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{6})$`)

const invalidHexMessage = "Please enter a valid hex color like #ff0000"

// RandomColor picks one of the default pastel colors.
func RandomColor(r *rand.Rand) string {
	if r == nil {
		return randomColors[rand.IntN(len(randomColors))]
	}
	return randomColors[r.IntN(len(randomColors))]
}

// IsHexColor reports whether s has the form #RRGGBB.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// ValidateHexColor is the validator for the custom color prompt. Empty input
// is accepted so the prompt can be dismissed.
func ValidateHexColor(s string) string {
	if s != "" && !IsHexColor(s) {
		return invalidHexMessage
	}
	return ""
}
