package export

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor turns a color token into an opaque color. Tokens are "#rgb",
// "#rrggbb" or a CSS color name; anything else reports false.
func ParseColor(token string) (color.NRGBA, bool) {
	if strings.HasPrefix(token, "#") {
		if len(token) != 4 && len(token) != 7 {
			return color.NRGBA{}, false
		}
		c, err := colorful.Hex(token)
		if err != nil {
			return color.NRGBA{}, false
		}
		r, g, b := c.Clamped().RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, true
	}
	named, ok := colornames.Map[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: named.R, G: named.G, B: named.B, A: 0xff}, true
}

// withOpacity scales the alpha of c by opacity in [0, 1].
func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(float64(c.A)*opacity + 0.5)
	return c
}
