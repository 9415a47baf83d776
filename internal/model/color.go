package model

import (
	"fmt"

	"github.com/gerow/go-color"
)

// ParseColor validates an HTML hex color and returns its normalized "#rrggbb" form.
func ParseColor(s string) (string, error) {
	rgb, err := color.HTMLToRGB(s)
	if err != nil {
		return "", fmt.Errorf("parse color %q: %w", s, err)
	}

	return "#" + rgb.ToHTML(), nil
}
