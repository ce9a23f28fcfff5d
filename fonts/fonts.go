package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

var (
	parsed *truetype.Font
	faces  = map[int]font.Face{}
)

// Load parses the TTF used for all text. Faces are created lazily per pixel size.
func Load(ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	parsed = f
	faces = map[int]font.Face{}
	return nil
}

// Face returns the face for the given pixel size
func Face(size int) font.Face {
	if f, ok := faces[size]; ok {
		return f
	}
	if parsed == nil {
		panic(fmt.Sprintf("Font of size %d requested before Load", size))
	}
	f := truetype.NewFace(parsed, &truetype.Options{Size: float64(size), DPI: 72})
	faces[size] = f
	return f
}

// Ascent returns the distance from the top of a line to its baseline
func Ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}
