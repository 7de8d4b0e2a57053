package colorspace

import "gocv.io/x/gocv"

type spacePair struct {
	source Space
	target Space
}

// conversionTable enumerates every supported ordered pair. The table
// is fixed at process start; unsupported pairs fail Resolve with a
// typed error instead of probing OpenCV constant names at runtime.
var conversionTable = map[spacePair]gocv.ColorConversionCode{
	{BGR, RGB}:  gocv.ColorBGRToRGB,
	{RGB, BGR}:  gocv.ColorBGRToRGB, // same OpenCV code in both directions
	{BGR, GRAY}: gocv.ColorBGRToGray,
	{RGB, GRAY}: gocv.ColorRGBToGray,
	{GRAY, BGR}: gocv.ColorGrayToBGR,
	{GRAY, RGB}: gocv.ColorGrayToBGR, // channel replication, order irrelevant
	{BGR, HSV}:  gocv.ColorBGRToHSV,
	{RGB, HSV}:  gocv.ColorRGBToHSV,
	{HSV, BGR}:  gocv.ColorHSVToBGR,
	{HSV, RGB}:  gocv.ColorHSVToRGB,
	{BGR, LAB}:  gocv.ColorBGRToLab,
	{RGB, LAB}:  gocv.ColorRGBToLab,
	{LAB, BGR}:  gocv.ColorLabToBGR,
	{LAB, RGB}:  gocv.ColorLabToRGB,
	{BGR, YUV}:  gocv.ColorBGRToYUV,
	{RGB, YUV}:  gocv.ColorRGBToYUV,
	{YUV, BGR}:  gocv.ColorYUVToBGR,
	{YUV, RGB}:  gocv.ColorYUVToRGB,
}

// Resolve looks up the conversion routine for an ordered pair of
// color spaces. It returns nil when source and target are equal (no
// conversion needed) and *UnsupportedConversionError when the pair is
// not registered. Pure lookup, no side effects.
func Resolve(source, target Space) (*Conversion, error) {
	if source == target {
		return nil, nil
	}

	code, ok := conversionTable[spacePair{source, target}]
	if !ok {
		return nil, &UnsupportedConversionError{Source: source, Target: target}
	}

	return &Conversion{code: code, source: source, target: target}, nil
}
