package theme

import "github.com/thenoetrevino/tiles/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Background     string
	Create         string
	Edit           string
	Delete         string
	TileBorder     string
	TileBg         string
	SelectedBorder string
	SelectedBg     string
	Glyph          string
	Title          string
	Subtle         string
	Normal         string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
	StatusBarBg    string
	StatusBarText  string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Background = colors.Background
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	TileBorder = colors.TileBorder
	TileBg = colors.TileBackground
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	Glyph = colors.Glyph
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}
