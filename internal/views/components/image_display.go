package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ImageDisplay shows the current fitted image, or a message when there is
// nothing to show
type ImageDisplay struct {
	container *fyne.Container
	image     *canvas.Image
	message   *widget.Label
}

func NewImageDisplay() *ImageDisplay {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth

	message := widget.NewLabel("")
	message.Alignment = fyne.TextAlignCenter
	message.Hide()

	return &ImageDisplay{
		container: container.NewStack(img, container.NewCenter(message)),
		image:     img,
		message:   message,
	}
}

func (id *ImageDisplay) GetContainer() *fyne.Container {
	return id.container
}

// SetImage replaces the displayed bitmap. The image is already fitted, so it
// is shown one bitmap pixel per device pixel: scale is the canvas scale that
// converts fyne units to device pixels.
func (id *ImageDisplay) SetImage(img image.Image, scale float32) {
	if img == nil {
		id.ShowMessage("Image could not be loaded")
		return
	}

	id.message.Hide()
	id.image.Image = img

	if scale <= 0 {
		scale = 1
	}
	bounds := img.Bounds()
	id.image.SetMinSize(fyne.NewSize(float32(bounds.Dx())/scale, float32(bounds.Dy())/scale))
	id.image.Show()
	id.image.Refresh()
}

// ShowMessage clears the image and displays text in its place
func (id *ImageDisplay) ShowMessage(text string) {
	id.image.Image = nil
	id.image.Hide()
	id.message.SetText(text)
	id.message.Show()
}

// MinSize is the size the image asks for, in fyne units
func (id *ImageDisplay) MinSize() fyne.Size {
	return id.image.MinSize()
}

// CurrentImage returns the bitmap on screen, nil when a message is shown
func (id *ImageDisplay) CurrentImage() image.Image {
	return id.image.Image
}
