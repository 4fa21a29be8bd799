package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"chirp/internal/observability"
)

// CloudinaryConfig holds credentials for the hosted media store.
type CloudinaryConfig struct {
	BaseURL   string // e.g. https://api.cloudinary.com
	CloudName string
	APIKey    string
	APISecret string
}

// CloudinaryStore talks to a Cloudinary-compatible upload API.
type CloudinaryStore struct {
	cfg    CloudinaryConfig
	client *http.Client
	now    func() time.Time
}

// NewCloudinaryStore returns a Store backed by the configured upload API.
func NewCloudinaryStore(cfg CloudinaryConfig) *CloudinaryStore {
	return &CloudinaryStore{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}
}

type uploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the payload to the store and returns the durable secure URL.
func (s *CloudinaryStore) Upload(ctx context.Context, payload string) (string, error) {
	if strings.TrimSpace(payload) == "" {
		return "", fmt.Errorf("empty upload payload")
	}

	ts := strconv.FormatInt(s.now().Unix(), 10)
	form := url.Values{}
	form.Set("file", payload)
	form.Set("api_key", s.cfg.APIKey)
	form.Set("timestamp", ts)
	form.Set("signature", s.sign(map[string]string{"timestamp": ts}))

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", strings.TrimRight(s.cfg.BaseURL, "/"), s.cfg.CloudName)
	var out uploadResponse
	if err := s.postForm(ctx, endpoint, form, &out); err != nil {
		observability.MediaStoreRequests.WithLabelValues("upload", "error").Inc()
		return "", err
	}
	if out.SecureURL == "" {
		observability.MediaStoreRequests.WithLabelValues("upload", "error").Inc()
		if out.Error.Message != "" {
			return "", fmt.Errorf("media store upload rejected: %s", out.Error.Message)
		}
		return "", fmt.Errorf("media store upload returned no secure URL")
	}

	observability.MediaStoreRequests.WithLabelValues("upload", "ok").Inc()
	return out.SecureURL, nil
}

// Delete removes the asset with the given public ID.
func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	if strings.TrimSpace(publicID) == "" {
		return fmt.Errorf("empty public ID")
	}

	ts := strconv.FormatInt(s.now().Unix(), 10)
	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("api_key", s.cfg.APIKey)
	form.Set("timestamp", ts)
	form.Set("signature", s.sign(map[string]string{"public_id": publicID, "timestamp": ts}))

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/destroy", strings.TrimRight(s.cfg.BaseURL, "/"), s.cfg.CloudName)
	var out struct {
		Result string `json:"result"`
	}
	if err := s.postForm(ctx, endpoint, form, &out); err != nil {
		observability.MediaStoreRequests.WithLabelValues("destroy", "error").Inc()
		return err
	}
	if out.Result != "ok" && out.Result != "not found" {
		observability.MediaStoreRequests.WithLabelValues("destroy", "error").Inc()
		return fmt.Errorf("media store destroy failed: %s", out.Result)
	}

	observability.MediaStoreRequests.WithLabelValues("destroy", "ok").Inc()
	return nil
}

func (s *CloudinaryStore) postForm(ctx context.Context, endpoint string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build media store request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("media store request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read media store response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("media store returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode media store response: %w", err)
	}
	return nil
}

// sign builds the request signature: the sorted params serialized as
// key=value pairs joined with '&', concatenated with the API secret, SHA-1
// hashed and hex encoded.
func (s *CloudinaryStore) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + s.cfg.APISecret))
	return hex.EncodeToString(sum[:])
}
