package media

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func TestPipelinePassesThroughRemoteURLs(t *testing.T) {
	p := NewPipeline(10)
	out, err := p.Normalize("https://cdn.example.com/pic.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/pic.jpg", out)
}

func TestPipelineNormalizesDataURI(t *testing.T) {
	raw := encodeTestJPEG(t, 64, 48)
	payload := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

	p := NewPipeline(10)
	out, err := p.Normalize(payload)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "data:image/jpeg;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(decoded))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
}

func TestPipelineAcceptsBareBase64(t *testing.T) {
	raw := encodeTestJPEG(t, 10, 10)
	p := NewPipeline(10)
	out, err := p.Normalize(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:image/jpeg;base64,"))
}

func TestPipelineDownscalesOversizedImages(t *testing.T) {
	raw := encodeTestJPEG(t, MasterMaxSize*2, MasterMaxSize)
	payload := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

	p := NewPipeline(50)
	out, err := p.Normalize(payload)
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(decoded))
	require.NoError(t, err)
	assert.Equal(t, MasterMaxSize, cfg.Width)
	assert.Equal(t, MasterMaxSize/2, cfg.Height)
}

func TestPipelineRejectsBadInput(t *testing.T) {
	p := NewPipeline(10)

	_, err := p.Normalize("")
	assert.Error(t, err)

	_, err = p.Normalize("data:image/jpeg;base64")
	assert.Error(t, err)

	_, err = p.Normalize("not-valid-base64!!!")
	assert.Error(t, err)

	// valid base64 but not an image
	_, err = p.Normalize(base64.StdEncoding.EncodeToString([]byte("plain text payload here")))
	assert.Error(t, err)
}

func TestPipelineEnforcesSizeLimit(t *testing.T) {
	raw := encodeTestJPEG(t, 512, 512)
	payload := base64.StdEncoding.EncodeToString(raw)

	p := NewPipeline(1)
	p.maxSourceBytes = 16
	_, err := p.Normalize(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}
