package drawing

// MaxRecentColors bounds the recently used colors list.
const MaxRecentColors = 16

// Palette is the fixed set of swatches offered to the view layer.
var Palette = []string{
	"#000000", "#FFFFFF", "#FF0000", "#00FF00", "#0000FF",
	"#FFFF00", "#FF00FF", "#00FFFF", "#FFA500", "#800080",
	"#FFC0CB", "#A52A2A", "#808080", "#000080", "#008000",
	"#FFD700", "#FF6347", "#32CD32", "#1E90FF", "#9370DB",
	"#F0E68C", "#DDA0DD", "#98FB98", "#87CEEB", "#DEB887",
	"#FF69B4", "#CD5C5C", "#40E0D0", "#EE82EE", "#90EE90",
}

// pushRecent moves color to the front of recent, dropping any earlier copy
// and trimming to MaxRecentColors. recent is not modified.
func pushRecent(recent []string, color string) []string {
	out := make([]string, 0, MaxRecentColors)
	out = append(out, color)
	for _, c := range recent {
		if c == color {
			continue
		}
		if len(out) == MaxRecentColors {
			break
		}
		out = append(out, c)
	}
	return out
}
