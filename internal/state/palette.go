package state

// Palette is the derived set of theme colors (hex strings).
type Palette struct {
	Background      string
	Text            string
	SecondaryText   string
	TertiaryText    string
	ModalBackground string
	Border          string
	Primary         string
	Success         string
	Danger          string
}

var (
	lightPalette = Palette{
		Background:      "#F5F5FA",
		Text:            "#000000",
		SecondaryText:   "#666666",
		TertiaryText:    "#999999",
		ModalBackground: "#FFFFFF",
		Border:          "#E6E6E6",
		Primary:         "#007AFF",
		Success:         "#34C759",
		Danger:          "#FF3B30",
	}
	darkPalette = Palette{
		Background:      "#191923",
		Text:            "#FFFFFF",
		SecondaryText:   "#CCCCCC",
		TertiaryText:    "#999999",
		ModalBackground: "#2D2D37",
		Border:          "#3A3A46",
		Primary:         "#007AFF",
		Success:         "#34C759",
		Danger:          "#FF3B30",
	}
)

// PaletteFor returns the palette for a light or dark theme.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// buildPalette is swapped in tests to count rebuilds.
var buildPalette = PaletteFor

// Palette returns the colors for the effective theme. The value is rebuilt
// only when IsDark changes.
func (s *State) Palette() Palette {
	dark := s.IsDark()
	if !s.paletteBuilt || s.paletteDark != dark {
		s.palette = buildPalette(dark)
		s.paletteDark = dark
		s.paletteBuilt = true
	}
	return s.palette
}
