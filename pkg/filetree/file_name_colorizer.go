package filetree

import (
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var fileColors = map[string]tcell.Color{
	"go":   tcell.ColorAqua,
	"rs":   tcell.ColorOrange,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"cpp":  tcell.ColorDodgerBlue,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"py":   tcell.ColorLightGreen,
	"sh":   tcell.ColorGreen,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"json": tcell.ColorGold,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"toml": tcell.ColorLightYellow,
	"xml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"txt":  tcell.ColorWhite,
	"csv":  tcell.ColorLightGreen,
	"log":  tcell.ColorRosyBrown,
	"png":  tcell.ColorMediumPurple,
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
}

// GetColorByFileExt returns the leaf row colour for a file name.
func GetColorByFileExt(name string) tcell.Color {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := fileColors[ext]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}
