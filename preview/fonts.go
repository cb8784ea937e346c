package preview

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontSet holds the parsed Go fonts. They are embedded in x/image, so
// rendering never depends on fonts installed on the host.
type fontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

var loadFonts = sync.OnceValues(func() (*fontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing Go Regular: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing Go Bold: %w", err)
	}
	return &fontSet{regular: regular, bold: bold}, nil
})

type faceKey struct {
	px   float64
	bold bool
}

// faceCache creates faces on demand for one render and closes them after.
type faceCache struct {
	fonts *fontSet
	faces map[faceKey]font.Face
}

func newFaceCache() (*faceCache, error) {
	fs, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return &faceCache{fonts: fs, faces: make(map[faceKey]font.Face)}, nil
}

// face returns a face whose em size is px pixels.
func (fc *faceCache) face(px float64, bold bool) (font.Face, error) {
	key := faceKey{px: px, bold: bold}
	if f, ok := fc.faces[key]; ok {
		return f, nil
	}

	src := fc.fonts.regular
	if bold {
		src = fc.fonts.bold
	}
	// At 72 DPI one point is one pixel.
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %.1fpx face: %w", px, err)
	}
	fc.faces[key] = f
	return f, nil
}

func (fc *faceCache) Close() {
	for _, f := range fc.faces {
		f.Close()
	}
	fc.faces = nil
}
