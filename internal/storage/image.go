package storage

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
)

const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatGIF  = "gif"
	FormatWebP = "webp"
)

var contentTypes = map[string]string{
	FormatJPEG: "image/jpeg",
	FormatPNG:  "image/png",
	FormatGIF:  "image/gif",
	FormatWebP: "image/webp",
}

var extensions = map[string]string{
	FormatJPEG: ".jpg",
	FormatPNG:  ".png",
	FormatGIF:  ".gif",
	FormatWebP: ".webp",
}

func ContentType(format string) string {
	return contentTypes[format]
}

// Extension is the file extension stored for a detected format.
func Extension(format string) string {
	return extensions[format]
}

func isWebP(data []byte) bool {
	return len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP"
}

// Inspect decodes only the image header and reports the real format, so a
// renamed text file never reaches storage.
func Inspect(data []byte) (string, image.Config, error) {
	var (
		cfg    image.Config
		format string
		err    error
	)
	if isWebP(data) {
		cfg, err = webp.DecodeConfig(bytes.NewReader(data))
		format = FormatWebP
	} else {
		cfg, format, err = image.DecodeConfig(bytes.NewReader(data))
	}
	if err != nil || contentTypes[format] == "" || cfg.Width == 0 || cfg.Height == 0 {
		return "", image.Config{}, httperr.ErrUnsupportedMedia("File content is not a supported image")
	}
	return format, cfg, nil
}

// FitWithin downscales the image so its longest side is at most maxPx and
// re-encodes it in the same format. Small images, animated GIFs and
// maxPx <= 0 leave data untouched.
func FitWithin(data []byte, maxPx int) ([]byte, error) {
	format, cfg, err := Inspect(data)
	if err != nil {
		return nil, err
	}
	if maxPx <= 0 || format == FormatGIF || (cfg.Width <= maxPx && cfg.Height <= maxPx) {
		return data, nil
	}

	var src image.Image
	if format == FormatWebP {
		src, err = webp.Decode(bytes.NewReader(data))
	} else {
		src, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, httperr.ErrUnsupportedMedia("File content is not a supported image")
	}

	w, h := scaled(cfg.Width, cfg.Height, maxPx)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85})
	case FormatPNG:
		err = png.Encode(&buf, dst)
	case FormatWebP:
		err = webp.Encode(&buf, dst, &webp.Options{Quality: 85})
	default:
		err = gif.Encode(&buf, dst, nil)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scaled(w, h, maxPx int) (int, int) {
	if w >= h {
		nh := h * maxPx / w
		if nh < 1 {
			nh = 1
		}
		return maxPx, nh
	}
	nw := w * maxPx / h
	if nw < 1 {
		nw = 1
	}
	return nw, maxPx
}
