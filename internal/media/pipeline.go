package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	// MasterMaxSize bounds the longest edge of an uploaded image.
	MasterMaxSize = 2048
	JPEGQuality   = 82
	WebPQuality   = 70
)

// Pipeline validates and normalizes inbound image payloads before they are
// handed to the Store. Remote URLs pass through untouched; inline payloads
// are decoded, bounded, downscaled, and re-encoded.
type Pipeline struct {
	maxSourceBytes int64
}

// NewPipeline returns a Pipeline enforcing the given source size limit.
func NewPipeline(maxUploadSizeMB int) *Pipeline {
	if maxUploadSizeMB <= 0 {
		maxUploadSizeMB = 10
	}
	return &Pipeline{maxSourceBytes: int64(maxUploadSizeMB) * 1024 * 1024}
}

// Normalize turns an image payload into the form sent to the media store.
// http(s) URLs are returned as-is (the store fetches them). Data URIs and
// raw base64 payloads are decoded, validated, resized to the master bound,
// and re-encoded as a data URI.
func (p *Pipeline) Normalize(payload string) (string, error) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return "", fmt.Errorf("empty image payload")
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed, nil
	}

	raw, err := decodeInlinePayload(trimmed)
	if err != nil {
		return "", err
	}
	if int64(len(raw)) > p.maxSourceBytes {
		return "", fmt.Errorf("image too large (max %dMB)", p.maxSourceBytes/(1024*1024))
	}

	detected := http.DetectContentType(raw)
	if !isAllowedImageMIME(detected) {
		return "", fmt.Errorf("unsupported image type %q", detected)
	}

	decoded, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("invalid image data: %w", err)
	}

	master := resizeToFit(decoded, MasterMaxSize, MasterMaxSize)

	var buf bytes.Buffer
	mime := "image/jpeg"
	switch format {
	case "webp":
		mime = "image/webp"
		if err := webp.Encode(&buf, master, &webp.Options{Quality: WebPQuality}); err != nil {
			return "", fmt.Errorf("encode webp: %w", err)
		}
	default:
		if err := jpeg.Encode(&buf, master, &jpeg.Options{Quality: JPEGQuality}); err != nil {
			return "", fmt.Errorf("encode jpeg: %w", err)
		}
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func decodeInlinePayload(payload string) ([]byte, error) {
	b64 := payload
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return nil, fmt.Errorf("malformed data URI")
		}
		b64 = payload[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image payload: %w", err)
	}
	return raw, nil
}

func isAllowedImageMIME(mime string) bool {
	switch mime {
	case "image/jpeg", "image/png", "image/webp":
		return true
	}
	return false
}

// resizeToFit scales img down so both dimensions fit within maxW x maxH,
// preserving aspect ratio. Images already within bounds are returned as-is.
func resizeToFit(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return img
	}

	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
