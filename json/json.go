// Package json provides the JSON encoder for jason values.
package json

import (
	"fmt"

	"github.com/zoobzio/jason"
)

// jsonEncoder implements jason.Encoder for JSON.
type jsonEncoder struct {
	opts []jason.Option
}

// New returns a JSON encoder configured with opts.
func New(opts ...jason.Option) jason.Encoder {
	return &jsonEncoder{opts: opts}
}

// ContentType returns the MIME type for JSON.
func (e *jsonEncoder) ContentType() string {
	return "application/json"
}

// CacheKey identifies the encoder's settings for jason.Use. Encoders with
// a Hook or custom double formatter are keyed by identity.
func (e *jsonEncoder) CacheKey() string {
	if k, ok := jason.ConfigKey(e.opts...); ok {
		return k
	}
	return fmt.Sprintf("%p", e)
}

// Encode renders v as JSON.
func (e *jsonEncoder) Encode(v jason.Value) ([]byte, error) {
	return jason.Marshal(v, e.opts...)
}
