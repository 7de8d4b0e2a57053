package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"gocv.io/x/gocv"
)

// FrameSource delivers images to the processing loop. Next returns
// io.EOF when the source is exhausted; the caller owns each returned
// Mat and must Close it.
type FrameSource interface {
	Next(ctx context.Context) (gocv.Mat, error)
	Close() error
}

// StillSource re-emits one loaded image at a fixed interval. It stands
// in for a camera during tuning: the image never changes, but the mask
// does as bounds move.
type StillSource struct {
	mat      gocv.Mat
	interval time.Duration
}

func NewStillSource(path string, interval time.Duration) (*StillSource, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		return nil, fmt.Errorf("cannot read image %q", path)
	}
	return &StillSource{mat: mat, interval: interval}, nil
}

func (s *StillSource) Next(ctx context.Context) (gocv.Mat, error) {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return gocv.Mat{}, ctx.Err()
	case <-timer.C:
		return s.mat.Clone(), nil
	}
}

func (s *StillSource) Close() error {
	return s.mat.Close()
}

// CameraSource reads frames from a capture device.
type CameraSource struct {
	capture *gocv.VideoCapture
}

func NewCameraSource(device int) (*CameraSource, error) {
	capture, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("open capture device %d: %w", device, err)
	}
	return &CameraSource{capture: capture}, nil
}

// Next blocks in the underlying capture read, which cannot be
// interrupted mid-frame; cancellation takes effect between frames.
// At camera rates that bounds shutdown latency by one frame interval.
func (s *CameraSource) Next(ctx context.Context) (gocv.Mat, error) {
	if err := ctx.Err(); err != nil {
		return gocv.Mat{}, err
	}

	frame := gocv.NewMat()
	if ok := s.capture.Read(&frame); !ok {
		frame.Close()
		return gocv.Mat{}, io.EOF
	}
	if frame.Empty() {
		frame.Close()
		return gocv.Mat{}, io.EOF
	}
	return frame, nil
}

func (s *CameraSource) Close() error {
	return s.capture.Close()
}
