package render

import (
	"github.com/BurntSushi/toml"

	"github.com/topoviz/topoviz/pkg/errors"
)

// Style controls the visual appearance of a topology diagram.
// The zero value is not usable - use DefaultStyle as the base and override
// individual fields, or load overrides from a TOML file with LoadStyle.
type Style struct {
	NodeColor string  `toml:"node_color"` // node fill color (Graphviz color name or #rrggbb)
	NodeWidth float64 `toml:"node_width"` // node diameter in inches
	EdgeColor string  `toml:"edge_color"` // edge stroke color
	EdgeWidth float64 `toml:"edge_width"` // edge stroke width in points
	FontName  string  `toml:"font_name"`  // label and title font
	FontSize  float64 `toml:"font_size"`  // node label size in points
	TitleSize float64 `toml:"title_size"` // diagram title size in points
}

// DefaultStyle returns the classic textbook look: light blue nodes, gray
// edges of width 2, sans-serif integer labels.
func DefaultStyle() Style {
	return Style{
		NodeColor: "lightblue",
		NodeWidth: 0.5,
		EdgeColor: "gray",
		EdgeWidth: 2,
		FontName:  "Helvetica",
		FontSize:  12,
		TitleSize: 14,
	}
}

// LoadStyle reads style overrides from a TOML file.
// Fields absent from the file keep their default values.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "load style %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Style{}, errors.New(errors.ErrCodeInvalidStyle,
			"unknown style key %q in %s", undecoded[0].String(), path)
	}
	if err := s.validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

func (s Style) validate() error {
	if s.NodeColor == "" || s.EdgeColor == "" {
		return errors.New(errors.ErrCodeInvalidStyle, "colors must not be empty")
	}
	if s.NodeWidth <= 0 || s.EdgeWidth <= 0 || s.FontSize <= 0 || s.TitleSize <= 0 {
		return errors.New(errors.ErrCodeInvalidStyle, "sizes must be positive")
	}
	return nil
}
