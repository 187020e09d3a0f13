package api

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
)

// CompressionConfig controls zstd handling of request and response bodies.
type CompressionConfig struct {
	// SkipRoutes are served without decompression or compression.
	SkipRoutes []string
	// MinSize is the smallest response body that is compressed.
	MinSize int
}

// zstdCodec shares one encoder and one decoder across requests; EncodeAll
// and DecodeAll are safe for concurrent use.
type zstdCodec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func newZstdCodec(maxDecoded int) (*zstdCodec, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(maxDecoded)))
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &zstdCodec{encoder: encoder, decoder: decoder}, nil
}

func (z *zstdCodec) Close() {
	z.encoder.Close()
	z.decoder.Close()
}

// ZstdMiddleware decompresses zstd request bodies and compresses responses
// for clients that accept zstd. Decoded bodies are capped at maxDecoded bytes.
func ZstdMiddleware(cfg CompressionConfig, maxDecoded int) (fiber.Handler, func(), error) {
	codec, err := newZstdCodec(maxDecoded)
	if err != nil {
		return nil, nil, err
	}

	handler := func(c *fiber.Ctx) error {
		if slices.Contains(cfg.SkipRoutes, c.Path()) {
			return c.Next()
		}

		if strings.EqualFold(c.Get(fiber.HeaderContentEncoding), ContentEncodingZstd) {
			if err := codec.decodeRequest(c); err != nil {
				log.Warn().Err(err).Str("path", c.Path()).Msg("Rejected zstd request body")
				return c.Status(fiber.StatusBadRequest).
					JSON(createResponse(map[string]interface{}{}, err))
			}
		}

		if err := c.Next(); err != nil {
			return err
		}

		if acceptsZstd(c.Get(fiber.HeaderAcceptEncoding)) {
			codec.encodeResponse(c, cfg.MinSize)
		}
		return nil
	}
	return handler, codec.Close, nil
}

func (z *zstdCodec) decodeRequest(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	decoded, err := z.decoder.DecodeAll(body, nil)
	if err != nil {
		return fmt.Errorf("failed to decompress zstd data: %w", err)
	}
	c.Request().SetBody(decoded)
	c.Request().Header.Del(fiber.HeaderContentEncoding)

	log.Trace().
		Int("compressed_size", len(body)).
		Int("decoded_size", len(decoded)).
		Msg("Request body decompressed")
	return nil
}

func (z *zstdCodec) encodeResponse(c *fiber.Ctx, minSize int) {
	body := c.Response().Body()
	if len(body) == 0 || len(body) < minSize {
		return
	}
	compressed := z.encoder.EncodeAll(body, make([]byte, 0, len(body)/2))
	c.Response().SetBody(compressed)
	c.Set(fiber.HeaderContentEncoding, ContentEncodingZstd)
	c.Vary(fiber.HeaderAcceptEncoding)

	log.Trace().
		Int("original_size", len(body)).
		Int("compressed_size", len(compressed)).
		Msg("Response body compressed")
}

// acceptsZstd reports whether an Accept-Encoding header lists zstd with a
// non-zero quality.
func acceptsZstd(header string) bool {
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), ContentEncodingZstd) {
			continue
		}
		q := strings.ReplaceAll(strings.TrimSpace(params), " ", "")
		return q != "q=0" && q != "q=0.0" && q != "q=0.00" && q != "q=0.000"
	}
	return false
}
