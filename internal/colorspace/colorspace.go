package colorspace

import (
	"fmt"
	"strings"

	"gocv.io/x/gocv"
)

// Space identifies a pixel-encoding scheme. The set of supported
// spaces is closed; conversions between them are enumerated in the
// registry table below.
type Space string

const (
	BGR  Space = "BGR"
	RGB  Space = "RGB"
	HSV  Space = "HSV"
	LAB  Space = "LAB"
	YUV  Space = "YUV"
	GRAY Space = "GRAY"
)

// Spaces lists every supported color space.
func Spaces() []Space {
	return []Space{BGR, RGB, HSV, LAB, YUV, GRAY}
}

// Channels returns the channel count an image encoded in the given
// space carries.
func (s Space) Channels() int {
	if s == GRAY {
		return 1
	}
	return 3
}

// ParseSpace maps a configuration string to a Space. Matching is
// case-insensitive so YAML authors can write "hsv" or "HSV".
func ParseSpace(name string) (Space, error) {
	s := Space(strings.ToUpper(name))
	for _, known := range Spaces() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown color space %q", name)
}

// Conversion is an opaque handle naming a pixel-format conversion
// routine. The routine itself lives in OpenCV and is invoked through
// gocv.CvtColor.
type Conversion struct {
	code   gocv.ColorConversionCode
	source Space
	target Space
}

// Code returns the gocv conversion code to pass to CvtColor.
func (c Conversion) Code() gocv.ColorConversionCode { return c.code }

func (c Conversion) String() string {
	return fmt.Sprintf("%s->%s", c.source, c.target)
}

// UnsupportedConversionError reports that no conversion routine is
// registered for an ordered pair of color spaces.
type UnsupportedConversionError struct {
	Source Space
	Target Space
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("no registered conversion from %s to %s", e.Source, e.Target)
}
