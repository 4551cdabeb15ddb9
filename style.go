package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/frameloop/ui/geom"
)

// Spacing constants for consistent layout (similar to Tailwind spacing scale).
// Use these instead of raw numbers for maintainability.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
	Space2XL  float32 = 24 // 2x extra large
	Space3XL  float32 = 32 // 3x extra large
	Space4XL  float32 = 48 // 4x extra large
)

// TextStyles holds the font size in points for each text role.
type TextStyles struct {
	Body      float32 `toml:"body" yaml:"body"`
	Heading   float32 `toml:"heading" yaml:"heading"`
	Monospace float32 `toml:"monospace" yaml:"monospace"`
	Small     float32 `toml:"small" yaml:"small"`
	Button    float32 `toml:"button" yaml:"button"`
}

// Spacing controls distances and default sizes, all in points.
type Spacing struct {
	// ItemSpacing is the gap between widgets: x within a row, y between rows.
	ItemSpacing   geom.Vec2 `toml:"item_spacing" yaml:"item_spacing"`
	ButtonPadding geom.Vec2 `toml:"button_padding" yaml:"button_padding"`
	MenuMargin    geom.Vec2 `toml:"menu_margin" yaml:"menu_margin"`
	Indent        float32   `toml:"indent" yaml:"indent"`
	// InteractSize is the smallest rect a clickable widget occupies.
	InteractSize  geom.Vec2 `toml:"interact_size" yaml:"interact_size"`
	SliderWidth   float32   `toml:"slider_width" yaml:"slider_width"`
	ComboWidth    float32   `toml:"combo_width" yaml:"combo_width"`
	TextEditWidth float32   `toml:"text_edit_width" yaml:"text_edit_width"`
	IconWidth     float32   `toml:"icon_width" yaml:"icon_width"`
	IconSpacing   float32   `toml:"icon_spacing" yaml:"icon_spacing"`
	TooltipWidth  float32   `toml:"tooltip_width" yaml:"tooltip_width"`

	ScrollBarWidth        float32 `toml:"scroll_bar_width" yaml:"scroll_bar_width"`
	ScrollBarInnerMargin  float32 `toml:"scroll_bar_inner_margin" yaml:"scroll_bar_inner_margin"`
	ScrollBarOuterMargin  float32 `toml:"scroll_bar_outer_margin" yaml:"scroll_bar_outer_margin"`
	ScrollHandleMinLength float32 `toml:"scroll_handle_min_length" yaml:"scroll_handle_min_length"`
}

// Interaction tunes how the pointer state machine classifies input.
type Interaction struct {
	// MaxClickDist is how far the pointer may move while pressed and
	// still count as a click.
	MaxClickDist        float32 `toml:"max_click_dist" yaml:"max_click_dist"`
	MaxClickDuration    float32 `toml:"max_click_duration" yaml:"max_click_duration"`
	MaxDoubleClickDelay float32 `toml:"max_double_click_delay" yaml:"max_double_click_delay"`

	ResizeGrabRadiusSide   float32 `toml:"resize_grab_radius_side" yaml:"resize_grab_radius_side"`
	ResizeGrabRadiusCorner float32 `toml:"resize_grab_radius_corner" yaml:"resize_grab_radius_corner"`

	TooltipDelay              float32 `toml:"tooltip_delay" yaml:"tooltip_delay"`
	ShowTooltipsOnlyWhenStill bool    `toml:"show_tooltips_only_when_still" yaml:"show_tooltips_only_when_still"`
}

// WidgetVisuals is the look of a widget in one interaction state.
type WidgetVisuals struct {
	BgFill        Color32 `toml:"bg_fill" yaml:"bg_fill"`
	BgStroke      Color32 `toml:"bg_stroke" yaml:"bg_stroke"`
	BgStrokeWidth float32 `toml:"bg_stroke_width" yaml:"bg_stroke_width"`
	// FgColor is used for text and icons on the widget.
	FgColor  Color32 `toml:"fg_color" yaml:"fg_color"`
	Rounding float32 `toml:"rounding" yaml:"rounding"`
	// Expansion grows the painted rect beyond the layout rect.
	Expansion float32 `toml:"expansion" yaml:"expansion"`
}

// WidgetStates holds the visuals for every interaction state.
type WidgetStates struct {
	NonInteractive WidgetVisuals `toml:"non_interactive" yaml:"non_interactive"`
	Inactive       WidgetVisuals `toml:"inactive" yaml:"inactive"`
	Hovered        WidgetVisuals `toml:"hovered" yaml:"hovered"`
	Active         WidgetVisuals `toml:"active" yaml:"active"`
	Disabled       WidgetVisuals `toml:"disabled" yaml:"disabled"`
}

// ForState picks the visuals for an interaction state.
func (w *WidgetStates) ForState(hovered, active, enabled bool) *WidgetVisuals {
	switch {
	case !enabled:
		return &w.Disabled
	case active:
		return &w.Active
	case hovered:
		return &w.Hovered
	default:
		return &w.Inactive
	}
}

// Visuals holds the colors and shape parameters of the theme.
type Visuals struct {
	DarkMode bool `toml:"dark_mode" yaml:"dark_mode"`

	// Panels and floating windows
	PanelFill         Color32 `toml:"panel_fill" yaml:"panel_fill"`
	PanelStroke       Color32 `toml:"panel_stroke" yaml:"panel_stroke"`
	WindowFill        Color32 `toml:"window_fill" yaml:"window_fill"`
	WindowStroke      Color32 `toml:"window_stroke" yaml:"window_stroke"`
	WindowStrokeWidth float32 `toml:"window_stroke_width" yaml:"window_stroke_width"`
	WindowRounding    float32 `toml:"window_rounding" yaml:"window_rounding"`
	MenuRounding      float32 `toml:"menu_rounding" yaml:"menu_rounding"`
	TooltipFill       Color32 `toml:"tooltip_fill" yaml:"tooltip_fill"`

	// Backgrounds
	FaintBgColor   Color32 `toml:"faint_bg_color" yaml:"faint_bg_color"`     // grid stripes, subtle fills
	ExtremeBgColor Color32 `toml:"extreme_bg_color" yaml:"extreme_bg_color"` // text edits, scroll gutters

	// Text
	SelectionBg    Color32 `toml:"selection_bg" yaml:"selection_bg"`
	TextCursor     Color32 `toml:"text_cursor" yaml:"text_cursor"`
	HyperlinkColor Color32 `toml:"hyperlink_color" yaml:"hyperlink_color"`
	WarnFgColor    Color32 `toml:"warn_fg_color" yaml:"warn_fg_color"`
	ErrorFgColor   Color32 `toml:"error_fg_color" yaml:"error_fg_color"`

	// Shape parameters
	ResizeCornerSize float32 `toml:"resize_corner_size" yaml:"resize_corner_size"`
	// ClipRectMargin is how far painting may poke outside a region
	// before it is scissored, leaving room for stroke expansion.
	ClipRectMargin float32 `toml:"clip_rect_margin" yaml:"clip_rect_margin"`

	Widgets WidgetStates `toml:"widgets" yaml:"widgets"`
}

// Style defines the visual appearance and feel of the UI.
type Style struct {
	Text        TextStyles  `toml:"text" yaml:"text"`
	Spacing     Spacing     `toml:"spacing" yaml:"spacing"`
	Interaction Interaction `toml:"interaction" yaml:"interaction"`
	Visuals     Visuals     `toml:"visuals" yaml:"visuals"`
	// AnimationTime is how long eased transitions take, in seconds.
	AnimationTime float32 `toml:"animation_time" yaml:"animation_time"`
}

// InteractVisuals picks the widget visuals matching a response.
func (s *Style) InteractVisuals(resp Response) *WidgetVisuals {
	return s.Visuals.Widgets.ForState(resp.Hovered, resp.IsPointerButtonDownOn || resp.HasFocus, resp.Enabled)
}

// DefaultStyle returns the default dark theme.
func DefaultStyle() *Style {
	return &Style{
		Text: TextStyles{
			Body:      13,
			Heading:   20,
			Monospace: 13,
			Small:     10,
			Button:    13,
		},
		Spacing: Spacing{
			ItemSpacing:   geom.V(SpaceMD, SpaceSM),
			ButtonPadding: geom.V(SpaceSM, SpaceXS),
			MenuMargin:    geom.Splat(SpaceMD),
			Indent:        SpaceXL,
			InteractSize:  geom.V(40, 20),
			SliderWidth:   100,
			ComboWidth:    100,
			TextEditWidth: 280,
			IconWidth:     14,
			IconSpacing:   SpaceSM,
			TooltipWidth:  600,

			ScrollBarWidth:        8,
			ScrollBarInnerMargin:  4,
			ScrollBarOuterMargin:  0,
			ScrollHandleMinLength: 12,
		},
		Interaction: Interaction{
			MaxClickDist:        MaxClickDist,
			MaxClickDuration:    MaxClickDuration,
			MaxDoubleClickDelay: MaxDoubleClickDelay,

			ResizeGrabRadiusSide:   5,
			ResizeGrabRadiusCorner: 10,

			TooltipDelay:              0.5,
			ShowTooltipsOnlyWhenStill: true,
		},
		Visuals: Visuals{
			DarkMode: true,

			PanelFill:         RGB(27, 27, 27),
			PanelStroke:       RGB(60, 60, 60),
			WindowFill:        RGB(27, 27, 27),
			WindowStroke:      RGB(60, 60, 60),
			WindowStrokeWidth: 1,
			WindowRounding:    6,
			MenuRounding:      2,
			TooltipFill:       RGB(20, 20, 20),

			FaintBgColor:   RGB(24, 24, 24),
			ExtremeBgColor: RGB(10, 10, 10),

			SelectionBg:    RGB(0, 92, 128),
			TextCursor:     RGB(192, 222, 255),
			HyperlinkColor: RGB(90, 170, 255),
			WarnFgColor:    RGB(255, 143, 0),
			ErrorFgColor:   RGB(255, 0, 0),

			ResizeCornerSize: 12,
			ClipRectMargin:   3,

			Widgets: WidgetStates{
				NonInteractive: WidgetVisuals{
					BgFill:        ColorTransparent,
					BgStroke:      RGB(60, 60, 60),
					BgStrokeWidth: 1,
					FgColor:       GrayColor(140),
					Rounding:      2,
				},
				Inactive: WidgetVisuals{
					BgFill:   RGB(60, 60, 60),
					FgColor:  GrayColor(180),
					Rounding: 2,
				},
				Hovered: WidgetVisuals{
					BgFill:        RGB(70, 70, 70),
					BgStroke:      GrayColor(150),
					BgStrokeWidth: 1,
					FgColor:       GrayColor(240),
					Rounding:      3,
					Expansion:     1,
				},
				Active: WidgetVisuals{
					BgFill:        RGB(55, 55, 55),
					BgStroke:      ColorWhite,
					BgStrokeWidth: 1,
					FgColor:       ColorWhite,
					Rounding:      2,
					Expansion:     1,
				},
				Disabled: WidgetVisuals{
					BgFill:   RGB(45, 45, 45),
					BgStroke: RGB(60, 60, 60),
					FgColor:  GrayColor(100),
					Rounding: 2,
				},
			},
		},
		AnimationTime: 0.1,
	}
}

// DarkStyle returns the dark theme. It is the default.
func DarkStyle() *Style {
	return DefaultStyle()
}

// LightStyle returns a light theme.
func LightStyle() *Style {
	s := DefaultStyle()
	v := &s.Visuals
	v.DarkMode = false

	v.PanelFill = RGB(248, 248, 248)
	v.PanelStroke = RGB(190, 190, 190)
	v.WindowFill = RGB(248, 248, 248)
	v.WindowStroke = RGB(190, 190, 190)
	v.TooltipFill = RGB(240, 240, 240)

	v.FaintBgColor = RGB(245, 245, 245)
	v.ExtremeBgColor = ColorWhite

	v.SelectionBg = RGB(144, 209, 255)
	v.TextCursor = RGB(0, 83, 125)
	v.HyperlinkColor = RGB(0, 102, 204)
	v.WarnFgColor = RGB(153, 82, 0)
	v.ErrorFgColor = RGB(204, 0, 0)

	v.Widgets = WidgetStates{
		NonInteractive: WidgetVisuals{
			BgFill:        ColorTransparent,
			BgStroke:      RGB(190, 190, 190),
			BgStrokeWidth: 1,
			FgColor:       GrayColor(80),
			Rounding:      2,
		},
		Inactive: WidgetVisuals{
			BgFill:   RGB(230, 230, 230),
			FgColor:  GrayColor(60),
			Rounding: 2,
		},
		Hovered: WidgetVisuals{
			BgFill:        RGB(220, 220, 220),
			BgStroke:      GrayColor(105),
			BgStrokeWidth: 1,
			FgColor:       ColorBlack,
			Rounding:      3,
			Expansion:     1,
		},
		Active: WidgetVisuals{
			BgFill:        RGB(165, 165, 165),
			BgStroke:      ColorBlack,
			BgStrokeWidth: 1,
			FgColor:       ColorBlack,
			Rounding:      2,
			Expansion:     1,
		},
		Disabled: WidgetVisuals{
			BgFill:   RGB(235, 235, 235),
			BgStroke: RGB(210, 210, 210),
			FgColor:  GrayColor(170),
			Rounding: 2,
		},
	}
	return s
}

// ErrUnknownFormat is returned when a style path has an extension other
// than .toml, .yaml or .yml.
var ErrUnknownFormat = errors.New("ui: unknown style file format")

// LoadStyle reads a theme file, picking the codec by extension. The
// file overlays the default style, so partial themes are fine.
func LoadStyle(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ui: load style: %w", err)
	}
	return decodeStyle(path, data)
}

// LoadStyleFS is LoadStyle reading from a fs.FS, for embedded themes.
func LoadStyleFS(fsys fs.FS, path string) (*Style, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("ui: load style: %w", err)
	}
	return decodeStyle(path, data)
}

func decodeStyle(path string, data []byte) (*Style, error) {
	s := DefaultStyle()
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, s)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, s)
	default:
		return nil, fmt.Errorf("ui: load style %q: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("ui: load style %q: %w", path, err)
	}
	uiLogger.Debug("style loaded", "path", path, "dark", s.Visuals.DarkMode)
	return s, nil
}

// SaveStyle writes the style as TOML.
func SaveStyle(path string, s *Style) error {
	if strings.ToLower(filepath.Ext(path)) != ".toml" {
		return fmt.Errorf("ui: save style %q: %w", path, ErrUnknownFormat)
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("ui: save style %q: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ui: save style: %w", err)
	}
	return nil
}
