package ui

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Color32 is a packed sRGBA color with premultiplied alpha, stored as
// 0xAABBGGRR so the raw bytes are R, G, B, A in memory on little-endian
// targets (the layout GPU vertex buffers expect).
//
// Premultiplied means the color channels are already scaled by alpha:
// additive colors use alpha 0 with nonzero color channels.
type Color32 uint32

// Common colors.
const (
	ColorTransparent Color32 = 0x00000000
	ColorBlack       Color32 = 0xFF000000
	ColorWhite       Color32 = 0xFFFFFFFF
	ColorRed         Color32 = 0xFF0000FF
	ColorGreen       Color32 = 0xFF00FF00
	ColorBlue        Color32 = 0xFFFF0000
	ColorYellow      Color32 = 0xFF00FFFF
	ColorGray        Color32 = 0xFF808080
	ColorDarkGray    Color32 = 0xFF404040
	ColorLightGray   Color32 = 0xFFC0C0C0
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color32 {
	return RGBAPremultiplied(r, g, b, 255)
}

// RGBA returns a color with straight (non-premultiplied) alpha, multiplying
// the color channels by a/255.
func RGBA(r, g, b, a uint8) Color32 {
	if a == 255 {
		return RGBAPremultiplied(r, g, b, 255)
	}
	if a == 0 {
		return ColorTransparent
	}
	mul := func(c uint8) uint8 {
		return uint8((uint32(c)*uint32(a) + 127) / 255)
	}
	return RGBAPremultiplied(mul(r), mul(g), mul(b), a)
}

// RGBAPremultiplied packs already-premultiplied components.
func RGBAPremultiplied(r, g, b, a uint8) Color32 {
	return Color32(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// GrayColor returns an opaque gray.
func GrayColor(v uint8) Color32 {
	return RGB(v, v, v)
}

// R returns the premultiplied red channel.
func (c Color32) R() uint8 { return uint8(c) }

// G returns the premultiplied green channel.
func (c Color32) G() uint8 { return uint8(c >> 8) }

// B returns the premultiplied blue channel.
func (c Color32) B() uint8 { return uint8(c >> 16) }

// A returns the alpha channel.
func (c Color32) A() uint8 { return uint8(c >> 24) }

// IsOpaque reports whether alpha is 255.
func (c Color32) IsOpaque() bool { return c.A() == 255 }

// MulAlpha scales the whole color (all four channels) by factor in [0, 1].
// With premultiplied alpha this is plain per-channel multiplication.
func (c Color32) MulAlpha(factor float32) Color32 {
	if factor >= 1 {
		return c
	}
	if factor <= 0 {
		return ColorTransparent
	}
	mul := func(v uint8) uint8 {
		return uint8(float32(v)*factor + 0.5)
	}
	return RGBAPremultiplied(mul(c.R()), mul(c.G()), mul(c.B()), mul(c.A()))
}

// Lerp interpolates toward o by t in premultiplied space.
func (c Color32) Lerp(o Color32, t float32) Color32 {
	lerp := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
	}
	return RGBAPremultiplied(
		lerp(c.R(), o.R()),
		lerp(c.G(), o.G()),
		lerp(c.B(), o.B()),
		lerp(c.A(), o.A()),
	)
}

// MarshalText renders the color as "#RRGGBBAA" with straight alpha, the
// form style files use.
func (c Color32) MarshalText() ([]byte, error) {
	a := c.A()
	un := func(v uint8) uint8 {
		if a == 0 {
			return 0
		}
		u := (uint32(v)*255 + uint32(a)/2) / uint32(a)
		if u > 255 {
			u = 255
		}
		return uint8(u)
	}
	return fmt.Appendf(nil, "#%02X%02X%02X%02X", un(c.R()), un(c.G()), un(c.B()), a), nil
}

// UnmarshalText parses "#RRGGBB" or "#RRGGBBAA" (straight alpha) and
// stores the premultiplied color.
func (c *Color32) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) == 0 || s[0] != '#' {
		return fmt.Errorf("ui: color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	var r, g, b, a uint8
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return fmt.Errorf("ui: color %q: %w", s, err)
		}
		a = 255
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return fmt.Errorf("ui: color %q: %w", s, err)
		}
	default:
		return fmt.Errorf("ui: color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	*c = RGBA(r, g, b, a)
	return nil
}

// UnmarshalYAML lets yaml decode colors through the same text form,
// since yaml.v3 does not consult TextUnmarshaler on its own.
func (c *Color32) UnmarshalYAML(value *yaml.Node) error {
	return c.UnmarshalText([]byte(value.Value))
}
