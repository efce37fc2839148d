package jason

import (
	"sync"
)

// registryKey combines source and target content types, and the codec
// settings when they are Keyed, for cache lookup.
type registryKey struct {
	sourceType string
	sourceConf string
	targetType string
	targetConf string
}

func cacheKey(c any) string {
	if k, ok := c.(Keyed); ok {
		return k.CacheKey()
	}
	return ""
}

var (
	registry   = make(map[registryKey]*Exporter)
	registryMu sync.RWMutex
)

// Use returns a cached exporter or builds a new one.
// Exporters are cached by the content types of dec and enc plus their
// CacheKey when they implement Keyed. Codecs that are not Keyed share the
// first exporter built for their content types; use NewExporter when such
// a codec carries settings of its own.
func Use(dec Decoder, enc Encoder) *Exporter {
	key := registryKey{
		sourceType: dec.ContentType(),
		sourceConf: cacheKey(dec),
		targetType: enc.ContentType(),
		targetConf: cacheKey(enc),
	}

	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached
	}
	registryMu.RUnlock()

	registryMu.Lock()
	defer registryMu.Unlock()

	if cached, ok := registry[key]; ok {
		return cached
	}

	exp := NewExporter(dec, enc)
	registry[key] = exp
	return exp
}

// Reset clears the exporter registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]*Exporter)
}
