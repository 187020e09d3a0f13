package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/roc/internal/report"
)

const DefaultClientRetries = 2

// ClientConfig configures the curve API client.
type ClientConfig struct {
	BaseURL         string
	Timeout         time.Duration
	ZstdCompression bool
	RetryCount      int
}

type Client struct {
	config      *ClientConfig
	restyClient *resty.Client
	encoder     *zstd.Encoder
	decoder     *zstd.Decoder
}

// NewClient creates a new curve API client
func NewClient(config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if config.BaseURL == "" {
		return nil, fmt.Errorf("base url cannot be empty")
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultClientTimeout * time.Second
	}
	if config.RetryCount == 0 {
		config.RetryCount = DefaultClientRetries
	}

	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(config.BaseURL, "/")).
		SetTimeout(config.Timeout).
		SetRetryCount(config.RetryCount).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	client := &Client{
		config:      config,
		restyClient: restyClient,
	}

	// Initialize reusable encoder and decoder if compression is enabled
	if config.ZstdCompression {
		encoder, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		client.encoder = encoder

		decoder, err := zstd.NewReader(nil)
		if err != nil {
			encoder.Close()
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		client.decoder = decoder
	}

	log.Debug().
		Str("base_url", config.BaseURL).
		Dur("timeout", config.Timeout).
		Bool("zstd", config.ZstdCompression).
		Msg("Curve API client created")
	return client, nil
}

// Close cleans up client resources
func (c *Client) Close() {
	if c.encoder != nil {
		c.encoder.Close()
	}
	if c.decoder != nil {
		c.decoder.Close()
	}
}

// Evaluate sends req to the server and returns the computed report.
func (c *Client) Evaluate(ctx context.Context, req CurveRequest) (report.Report, error) {
	result, err := postJSON[report.Report](ctx, c, CurvesRoute, req)
	if err != nil {
		return report.Report{}, err
	}
	return result.Body, nil
}

// Health reports the server status string.
func (c *Client) Health(ctx context.Context) (string, error) {
	var result StdResponse[HealthResponse]
	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetResult(&result).
		Get(HealthRoute)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", HealthRoute, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("request returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return result.Body.Status, nil
}

func postJSON[T any](ctx context.Context, c *Client, path string, body any) (StdResponse[T], error) {
	var result StdResponse[T]
	payload, err := sonic.Marshal(body)
	if err != nil {
		return result, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := c.restyClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if c.config.ZstdCompression {
		payload = c.encoder.EncodeAll(payload, nil)
		req.SetHeader("Content-Encoding", ContentEncodingZstd).
			SetHeader("Accept-Encoding", ContentEncodingZstd)
	}

	resp, err := req.SetBody(payload).Post(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("post request failed")
		return result, fmt.Errorf("post %s: %w", path, err)
	}

	raw := resp.Body()
	if strings.EqualFold(resp.Header().Get("Content-Encoding"), ContentEncodingZstd) {
		if c.decoder == nil {
			return result, fmt.Errorf("received zstd response without a decoder")
		}
		raw, err = c.decoder.DecodeAll(raw, nil)
		if err != nil {
			return result, fmt.Errorf("failed to decompress response: %w", err)
		}
	}

	if err := sonic.Unmarshal(raw, &result); err != nil {
		log.Error().
			Int("status", resp.StatusCode()).
			Str("path", path).
			Msg("post returned an unreadable body")
		return result, fmt.Errorf("request returned status %d: %w", resp.StatusCode(), err)
	}
	if result.Error != nil {
		log.Error().Str("error", *result.Error).Str("path", path).Msg("response contains error")
		return result, fmt.Errorf("response error (status %d): %s", resp.StatusCode(), *result.Error)
	}
	if resp.IsError() {
		return result, fmt.Errorf("request returned status %d: %s", resp.StatusCode(), string(raw))
	}
	return result, nil
}
