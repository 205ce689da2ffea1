package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20

var ErrInvalidImage = errors.New("invalid image")

type Image struct {
	Data        []byte
	ContentType string
	Extension   string
}

// DecodeBase64Image parses a "data:image/<type>;base64,<payload>" URI. The
// declared type is ignored; the content is sniffed and must be an image.
func DecodeBase64Image(dataURI string) (Image, error) {
	header, payload, found := strings.Cut(dataURI, ",")
	if !found || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return Image{}, fmt.Errorf("%w: expected a base64 data URI", ErrInvalidImage)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return Image{}, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}
	if len(data) > maxImageSize {
		return Image{}, fmt.Errorf("%w: larger than %d bytes", ErrInvalidImage, maxImageSize)
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return Image{}, fmt.Errorf("%w: unsupported content type %s", ErrInvalidImage, mime.String())
	}
	return Image{Data: data, ContentType: mime.String(), Extension: mime.Extension()}, nil
}

// SaveImage decodes dataURI and stores it under folder with a random name.
func SaveImage(ctx context.Context, storage MediaStorage, folder, dataURI string) (string, error) {
	img, err := DecodeBase64Image(dataURI)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), img.Extension)
	return storage.Save(ctx, key, bytes.NewReader(img.Data), img.ContentType)
}
