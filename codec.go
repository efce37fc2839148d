package jason

// Decoder exposes an encoded document as a Value view.
type Decoder interface {
	// ContentType returns the MIME type of the source format (e.g., "application/bson").
	ContentType() string

	// Decode returns the root of the document in data.
	// The returned Value may alias data; data must outlive it.
	Decode(data []byte) (Value, error)
}

// Encoder renders a Value into an output format.
type Encoder interface {
	// ContentType returns the MIME type of the output (e.g., "application/json").
	ContentType() string

	// Encode renders v.
	Encode(v Value) ([]byte, error)
}

// Keyed is implemented by codecs whose behavior depends on configuration.
// Use caches one Exporter per distinct key, so codecs of the same content
// type with different settings do not share an Exporter.
type Keyed interface {
	CacheKey() string
}
