package mocks

import (
	"image"

	"github.com/user/gridraster/pkg/ports"
)

// ImageCodec is a mock implementation of ports.ImageCodec.
type ImageCodec struct {
	DecodeImageFunc func(data []byte) (image.Image, string, error)
	EncodeImageFunc func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
}

func (m *ImageCodec) DecodeImage(data []byte) (image.Image, string, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 9, 9)), "png", nil
}

func (m *ImageCodec) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

var _ ports.ImageCodec = (*ImageCodec)(nil)
