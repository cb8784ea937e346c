// Package format detects the file formats slidegen reads and writes.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PPTX indicates a PowerPoint (.pptx) presentation.
	PPTX
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// HTML indicates an HTML page.
	HTML
	// YAML indicates a YAML configuration file.
	YAML
	// TOML indicates a TOML configuration file.
	TOML
	// ZIP indicates a ZIP archive that is not a presentation, such as a
	// Word or Excel document.
	ZIP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PPTX:
		return "PPTX"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case HTML:
		return "HTML"
	case YAML:
		return "YAML"
	case TOML:
		return "TOML"
	case ZIP:
		return "ZIP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PPTX:
		return ".pptx"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case HTML:
		return ".html"
	case YAML:
		return ".yml"
	case TOML:
		return ".toml"
	case ZIP:
		return ".zip"
	default:
		return ""
	}
}

// IsImage reports whether the format is a raster image.
func (f Format) IsImage() bool {
	return f == PNG || f == JPEG
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pptx":
		return PPTX
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".html", ".htm":
		return HTML
	case ".yml", ".yaml":
		return YAML
	case ".toml":
		return TOML
	case ".zip":
		return ZIP
	default:
		return Unknown
	}
}

var (
	magicZIP  = []byte{0x50, 0x4B, 0x03, 0x04}
	magicPNG  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
	magicJPEG = []byte{0xFF, 0xD8, 0xFF}
)

// DetectFromMagic checks leading bytes to determine format.
// ZIP archives report ZIP; use DetectFromReader to tell a presentation apart.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, magicPNG):
		return PNG
	case bytes.HasPrefix(data, magicJPEG):
		return JPEG
	case bytes.HasPrefix(data, magicZIP):
		return ZIP
	case detectHTMLMagic(data):
		return HTML
	}
	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	upper := strings.ToUpper(string(data[:min(512, len(data))]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	return strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML")
}

// DetectFromReader inspects the content to determine format.
// It opens ZIP archives to distinguish presentations from other archives.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}

	f := DetectFromMagic(magic[:n])
	if f != ZIP {
		return f, nil
	}
	return detectZIPFormat(r, size)
}

// detectZIPFormat reports PPTX when the archive holds a PresentationML
// main part.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	var hasTypes, hasPresentation bool
	for _, f := range zr.File {
		switch f.Name {
		case "[Content_Types].xml":
			hasTypes = true
		case "ppt/presentation.xml":
			hasPresentation = true
		}
	}

	if hasTypes && hasPresentation {
		return PPTX, nil
	}
	return ZIP, nil
}
