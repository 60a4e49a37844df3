package debugmenu

// Spacing constants for consistent layout (similar to Tailwind spacing scale).
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
)

// Style defines the look of the menu panel.
type Style struct {
	// Text colors
	TextColor         uint32
	TextDisabledColor uint32
	FolderTextColor   uint32
	ValueTextColor    uint32
	ValueActiveColor  uint32 // Value of the leaf being edited
	DescriptionColor  uint32

	// Panel colors
	PanelColor       uint32
	PanelBorderColor uint32
	HotBgColor       uint32 // Row under the cursor
	ActiveBgColor    uint32 // Row being edited
	FilterBgColor    uint32
	FilterTextColor  uint32
	ScrollbarColor   uint32

	// Sizing
	FontScale    float32
	CharWidth    float32
	CharHeight   float32
	ItemSpacing  float32 // Vertical gap added to the text height of a row
	PanelPadding float32
	IndentWidth  float32 // Horizontal offset per depth level
	PanelWidth   float32 // 0 sizes the panel to its widest row
	MinWidth     float32
	ValueGap     float32 // Space between the title column and the value column
	BorderSize   float32

	// DescriptionRows limits the wrapped description of the hot item.
	DescriptionRows int

	// AnimSpeed is the rate, in units per second, at which open/close and
	// highlight factors move toward their targets.
	AnimSpeed float32
}

// DefaultStyle returns the default style for pixel renderers.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,
		FolderTextColor:   RGBA(255, 220, 120, 255),
		ValueTextColor:    RGBA(170, 200, 255, 255),
		ValueActiveColor:  ColorYellow,
		DescriptionColor:  RGBA(190, 190, 190, 255),

		PanelColor:       RGBA(20, 20, 20, 200),
		PanelBorderColor: RGBA(80, 80, 80, 255),
		HotBgColor:       RGBA(50, 100, 150, 255),
		ActiveBgColor:    RGBA(150, 90, 30, 255),
		FilterBgColor:    RGBA(30, 30, 30, 255),
		FilterTextColor:  ColorCyan,
		ScrollbarColor:   RGBA(80, 80, 80, 255),

		FontScale:    1.0,
		CharWidth:    FontGlyphWidth,
		CharHeight:   FontGlyphHeight,
		ItemSpacing:  SpaceSM * 2,
		PanelPadding: SpaceMD,
		IndentWidth:  SpaceLG,
		MinWidth:     160,
		ValueGap:     SpaceXL,
		BorderSize:   1,

		DescriptionRows: 3,
		AnimSpeed:       8,
	}
}

// GTAStyle returns a dark theme with cyan/yellow accents and a larger font.
func GTAStyle() Style {
	s := DefaultStyle()
	s.TextColor = ColorWhite
	s.FolderTextColor = RGBA(255, 200, 0, 255)
	s.ValueTextColor = RGBA(0, 180, 230, 255)
	s.ValueActiveColor = RGBA(255, 200, 0, 255)
	s.PanelColor = RGBA(0, 0, 0, 220)
	s.PanelBorderColor = RGBA(0, 150, 200, 255)
	s.HotBgColor = RGBA(0, 120, 180, 255)
	s.ActiveBgColor = RGBA(0, 60, 90, 255)
	s.FilterTextColor = RGBA(255, 200, 0, 255)
	s.FontScale = 1.5
	s.PanelPadding = SpaceLG
	return s
}

// CellStyle returns a style for character-cell renderers, where one unit is
// one terminal cell.
func CellStyle() Style {
	s := DefaultStyle()
	s.CharWidth = 1
	s.CharHeight = 1
	s.ItemSpacing = 0
	s.PanelPadding = 1
	s.IndentWidth = 2
	s.MinWidth = 24
	s.ValueGap = 2
	s.BorderSize = 0
	return s
}

// rowHeight returns the height of one menu row at the given scale.
func (s *Style) rowHeight(scale float32) float32 {
	return (s.CharHeight*s.FontScale + s.ItemSpacing) * scale
}
