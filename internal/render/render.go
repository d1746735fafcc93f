package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ironsheep/image-grep/internal/search"
)

// Format selects how matches are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Formats lists the accepted output formats.
var Formats = []Format{FormatText, FormatJSON}

// ParseFormat returns the Format named by s, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want text or json)", s)
}

// Text joins points as "x,y,x,y,...". It returns "" for no points.
func Text(points []search.Point) string {
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Y))
	}
	return b.String()
}

// Write renders points to w.
//
// FormatText writes Text(points) and a newline, or nothing when points is
// empty. FormatJSON always writes a JSON array, "[]" when empty, followed
// by a newline.
func Write(w io.Writer, points []search.Point, format Format) error {
	switch format {
	case FormatText:
		if len(points) == 0 {
			return nil
		}
		_, err := io.WriteString(w, Text(points)+"\n")
		return err
	case FormatJSON:
		if points == nil {
			points = []search.Point{}
		}
		return json.NewEncoder(w).Encode(points)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
