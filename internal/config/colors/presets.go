package colors

// tones is the small set of roles every preset is derived from
type tones struct {
	name string

	bg, surface, raised, border string
	fg, muted, title, glyph     string
	accent, highlight           string
	green, blue, red            string

	info, warning, failure [2]string // foreground, background

	bar, barText string
}

func (t tones) scheme() *ColorScheme {
	return &ColorScheme{
		Preset:     t.name,
		Accent:     t.accent,
		Background: t.bg,

		Create: t.green,
		Edit:   t.blue,
		Delete: t.red,

		TileBorder:     t.border,
		TileBackground: t.surface,
		SelectedBorder: t.highlight,
		SelectedBg:     t.raised,
		Glyph:          t.glyph,

		Title:  t.title,
		Subtle: t.muted,
		Normal: t.fg,

		InfoFg:    t.info[0],
		InfoBg:    t.info[1],
		WarningFg: t.warning[0],
		WarningBg: t.warning[1],
		ErrorFg:   t.failure[0],
		ErrorBg:   t.failure[1],

		StatusBarBg:   t.bar,
		StatusBarText: t.barText,
	}
}

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return tones{
		name: "default",
		bg: "#1C1C1C", surface: "#262626", raised: "#3A3A3A", border: "#585858",
		fg: "#D0D0D0", muted: "#585858", title: "#D75FD7", glyph: "#5F87D7",
		accent: "#874BFD", highlight: "#D75FD7",
		green: "#5FD75F", blue: "#5F87D7", red: "#FF0000",
		info: [2]string{"#00AFFF", "#00005F"},
		warning: [2]string{"#FFD700", "#875F00"},
		failure: [2]string{"#FF0000", "#5F0000"},
		bar: "#874BFD", barText: "#D0D0D0",
	}.scheme()
}

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return tones{
		name: "monochrome",
		bg: "#121212", surface: "#1C1C1C", raised: "#3A3A3A", border: "#585858",
		fg: "#D0D0D0", muted: "#585858", title: "#FFFFFF", glyph: "#FFFFFF",
		accent: "#FFFFFF", highlight: "#FFFFFF",
		green: "#FFFFFF", blue: "#FFFFFF", red: "#FFFFFF",
		info: [2]string{"#FFFFFF", "#1C1C1C"},
		warning: [2]string{"#FFFFFF", "#3A3A3A"},
		failure: [2]string{"#FFFFFF", "#585858"},
		bar: "#3A3A3A", barText: "#FFFFFF",
	}.scheme()
}

// Kanagawa alert colors shared by the dark variants
var (
	kanagawaInfo    = [2]string{"#658594", "#252535"}
	kanagawaWarning = [2]string{"#FF9E3B", "#49443C"}
	kanagawaError   = [2]string{"#E82424", "#43242B"}
)

// Wave returns the Kanagawa Wave color scheme (dark, blue and violet)
func Wave() *ColorScheme {
	return tones{
		name: "wave",
		bg: "#181820", surface: "#1F1F28", raised: "#223249", border: "#54546D",
		fg: "#DCD7BA", muted: "#727169", title: "#7E9CD8", glyph: "#7E9CD8",
		accent: "#957FB8", highlight: "#7AA89F",
		green: "#98BB6C", blue: "#7E9CD8", red: "#FF5D62",
		info: kanagawaInfo, warning: kanagawaWarning, failure: kanagawaError,
		bar: "#2A2A37", barText: "#DCD7BA",
	}.scheme()
}

// Dragon returns the Kanagawa Dragon color scheme (dark, warm earth tones)
func Dragon() *ColorScheme {
	return tones{
		name: "dragon",
		bg: "#12120F", surface: "#181616", raised: "#282727", border: "#625E5A",
		fg: "#C5C9C5", muted: "#737C73", title: "#8BA4B0", glyph: "#8BA4B0",
		accent: "#8992A7", highlight: "#8EA4A2",
		green: "#8A9A7B", blue: "#8BA4B0", red: "#C4746E",
		info: kanagawaInfo, warning: kanagawaWarning, failure: kanagawaError,
		bar: "#8992A7", barText: "#C5C9C5",
	}.scheme()
}

// Lotus returns the Kanagawa Lotus color scheme (light, paper background)
func Lotus() *ColorScheme {
	return tones{
		name: "lotus",
		bg: "#D5CEA3", surface: "#F2ECBC", raised: "#C7D7E0", border: "#A09CAC",
		fg: "#545464", muted: "#8A8980", title: "#4D699B", glyph: "#4D699B",
		accent: "#624C83", highlight: "#597B75",
		green: "#6F894E", blue: "#4D699B", red: "#C84053",
		info: [2]string{"#5A7785", "#B5CBD2"},
		warning: [2]string{"#E98A00", "#F9D791"},
		failure: [2]string{"#E82424", "#D9A594"},
		bar: "#E7DBA0", barText: "#545464",
	}.scheme()
}
