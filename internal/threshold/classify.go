package threshold

import (
	"gocv.io/x/gocv"
)

// Classify applies a spec to one image and produces a binary mask:
// 255 where every channel of the (converted) pixel lies inside the
// spec's inclusive bounds, 0 elsewhere. The mask shares the input's
// width and height and is always single-channel CV8U.
//
// The call is pure: it reads one bound snapshot at the start and holds
// no state between frames. Errors abort only this call; the spec and
// any previously produced mask stay intact. The caller owns the
// returned Mat and must Close it.
func Classify(spec *Spec, src gocv.Mat) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.Mat{}, newValidationError("input image is empty")
	}

	bound := spec.Snapshot()

	working := src
	if conv := spec.Conversion(); conv != nil {
		// Guard the conversion itself: CvtColor aborts inside OpenCV
		// on a channel layout that does not match the source space.
		if expected := spec.SourceSpace().Channels(); src.Channels() != expected {
			return gocv.Mat{}, newValidationError("image has %d channels, source space %s expects %d",
				src.Channels(), spec.SourceSpace(), expected)
		}
		converted := gocv.NewMat()
		gocv.CvtColor(src, &converted, conv.Code())
		defer converted.Close()
		working = converted
	}

	channels := working.Channels()
	if channels != len(bound.Low) {
		return gocv.Mat{}, newValidationError("image has %d channels, bounds expect %d", channels, len(bound.Low))
	}

	if channels <= 4 {
		mask := gocv.NewMat()
		gocv.InRangeWithScalar(working, boundScalar(bound.Low), boundScalar(bound.High), &mask)
		return mask, nil
	}

	return classifyPerPixel(working, bound)
}

// boundScalar packs up to four channel bounds into a gocv scalar.
func boundScalar(values []float64) gocv.Scalar {
	var s gocv.Scalar
	switch len(values) {
	case 4:
		s.Val4 = values[3]
		fallthrough
	case 3:
		s.Val3 = values[2]
		fallthrough
	case 2:
		s.Val2 = values[1]
		fallthrough
	case 1:
		s.Val1 = values[0]
	}
	return s
}

// classifyPerPixel handles channel counts beyond what a scalar can
// carry. A pixel passes only if every channel is within its bounds.
func classifyPerPixel(src gocv.Mat, bound Bound) (gocv.Mat, error) {
	rows := src.Rows()
	cols := src.Cols()
	channels := src.Channels()

	mask := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC1)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var value uint8 = 255
			for c := 0; c < channels; c++ {
				sample := float64(src.GetUCharAt3(y, x, c))
				if sample < bound.Low[c] || sample > bound.High[c] {
					value = 0
					break
				}
			}
			mask.SetUCharAt(y, x, value)
		}
	}

	return mask, nil
}
