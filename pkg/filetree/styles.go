package filetree

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurBorderColor    tcell.Color
	FolderColor        tcell.Color
	ErrorColor         tcell.Color
	StatusColor        tcell.Color
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurBorderColor:    tcell.ColorGray,
	FolderColor:        tcell.ColorWhite,
	ErrorColor:         tcell.ColorOrangeRed,
	StatusColor:        tcell.ColorSlateGray,
}

const dirEmoji = "📁"
