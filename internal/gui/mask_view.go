package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"gocv.io/x/gocv"
)

// MaskView displays the most recent classification mask.
type MaskView struct {
	image *canvas.Image
}

func NewMaskView() *MaskView {
	placeholder := image.NewGray(image.Rect(0, 0, 1, 1))
	img := canvas.NewImageFromImage(placeholder)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(320, 240))
	return &MaskView{image: img}
}

// SetMask converts the mask to a displayable image and refreshes the
// view on the UI thread. The caller keeps ownership of the Mat.
func (v *MaskView) SetMask(mask gocv.Mat) error {
	img, err := mask.ToImage()
	if err != nil {
		return err
	}

	fyne.Do(func() {
		v.image.Image = img
		v.image.Refresh()
	})
	return nil
}

// Canvas returns the drawable object for window layout.
func (v *MaskView) Canvas() fyne.CanvasObject {
	return v.image
}
