package jason

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Exporter converts documents from a source format into the output of an
// Encoder, typically JSON.
//
// Exporters are safe for concurrent use. SetEncoder may be called at any
// time; exports already running keep the encoder they started with.
type Exporter struct {
	decoder Decoder

	mu      sync.RWMutex
	encoder Encoder
}

// NewExporter creates an Exporter reading with dec and writing with enc.
func NewExporter(dec Decoder, enc Encoder) *Exporter {
	e := &Exporter{decoder: dec, encoder: enc}
	emitExporterCreated(context.Background(), dec.ContentType(), enc.ContentType())
	return e
}

// SetEncoder replaces the output encoder.
// Returns the exporter for chaining. Safe for concurrent use.
func (e *Exporter) SetEncoder(enc Encoder) *Exporter {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.encoder = enc
	return e
}

// Decoder returns the source format decoder.
func (e *Exporter) Decoder() Decoder {
	return e.decoder
}

// Export decodes data and renders the resulting document.
func (e *Exporter) Export(ctx context.Context, data []byte) ([]byte, error) {
	e.mu.RLock()
	enc := e.encoder
	e.mu.RUnlock()

	sourceType, targetType := e.decoder.ContentType(), enc.ContentType()
	start := time.Now()
	emitExportStart(ctx, sourceType, targetType, len(data))

	var retErr error
	var retData []byte
	defer func() {
		emitExportComplete(ctx, sourceType, targetType,
			len(data), len(retData), time.Since(start), retErr)
	}()

	v, err := e.decoder.Decode(data)
	if err != nil {
		retErr = fmt.Errorf("decode: %w", err)
		return nil, retErr
	}

	retData, err = enc.Encode(v)
	if err != nil {
		retErr = fmt.Errorf("encode: %w", err)
		return nil, retErr
	}
	return retData, nil
}
