// Package mask hides sensitive strings in jason documents before export.
//
// A Masking wraps a document in a read-only view. String values stored
// under configured object keys come back transformed by their rule; when such a
// key holds an array or object, every string inside it is treated the
// same way. Keys themselves and all other values pass through untouched,
// and the underlying document is never modified.
//
//	argon, _ := mask.Argon2Hasher(salt, mask.DefaultArgon2Params())
//	m, _ := mask.New(
//	    mask.Mask("email", mask.MaskEmail),
//	    mask.Hash("user_id", mask.HashSHA256),
//	    mask.HashWith("ssn", argon),
//	    mask.Redact("password", "***"),
//	)
//	out, _ := jason.Marshal(m.View(doc))
package mask

import (
	"errors"
	"fmt"
	"sync"

	"github.com/zoobzio/jason"
)

// Sentinel errors for rule validation.
var (
	// ErrUnknownMask indicates a rule names a mask type with no registered masker.
	ErrUnknownMask = errors.New("unknown mask type")

	// ErrUnknownHash indicates a rule names a hash algorithm with no registered hasher.
	ErrUnknownHash = errors.New("unknown hash algorithm")
)

// Rule describes the treatment of strings under one object key.
type Rule struct {
	Key         string
	Type        MaskType // masker to apply
	Hasher      Hasher   // hasher to apply when Type is empty
	Hash        HashAlgo // registered hasher to apply when Type and Hasher are empty
	Replacement string   // redaction text when nothing else is set
}

// Mask returns a rule masking strings under key with the given masker.
func Mask(key string, mt MaskType) Rule {
	return Rule{Key: key, Type: mt}
}

// Hash returns a rule replacing strings under key with their digest.
func Hash(key string, algo HashAlgo) Rule {
	return Rule{Key: key, Hash: algo}
}

// HashWith returns a rule replacing strings under key with h's digest.
// Use it for hashers that need a key or salt, such as BLAKE2bHasher and
// Argon2Hasher.
func HashWith(key string, h Hasher) Rule {
	return Rule{Key: key, Hasher: h}
}

// Redact returns a rule replacing strings under key with replacement.
func Redact(key, replacement string) Rule {
	return Rule{Key: key, Replacement: replacement}
}

// Masking applies rules to document views.
// It is safe for concurrent use; SetMasker may be called at any time.
type Masking struct {
	rules map[string]Rule

	mu      sync.RWMutex
	maskers map[MaskType]Masker
	hashers map[HashAlgo]Hasher
}

// New creates a Masking with the builtin maskers and hashers.
// Rules naming an unknown mask type or hash algorithm are rejected.
func New(rules ...Rule) (*Masking, error) {
	m := &Masking{
		rules:   make(map[string]Rule, len(rules)),
		maskers: builtinMaskers(),
		hashers: builtinHashers(),
	}
	for _, r := range rules {
		switch {
		case r.Type != "":
			if _, ok := m.maskers[r.Type]; !ok {
				return nil, fmt.Errorf("%w %q (key %s)", ErrUnknownMask, r.Type, r.Key)
			}
		case r.Hasher != nil:
		case r.Hash != "":
			if _, ok := m.hashers[r.Hash]; !ok {
				return nil, fmt.Errorf("%w %q (key %s)", ErrUnknownHash, r.Hash, r.Key)
			}
		}
		m.rules[r.Key] = r
	}
	return m, nil
}

// SetMasker registers or replaces the masker for mt.
// Returns the masking for chaining. Safe for concurrent use.
func (m *Masking) SetMasker(mt MaskType, mk Masker) *Masking {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maskers[mt] = mk
	return m
}

// SetHasher registers or replaces the hasher for algo.
// Returns the masking for chaining. Safe for concurrent use.
func (m *Masking) SetHasher(algo HashAlgo, h Hasher) *Masking {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hashers[algo] = h
	return m
}

// View returns v with the rules applied.
func (m *Masking) View(v jason.Value) jason.Value {
	return m.wrap(v, nil)
}

func (m *Masking) apply(r *Rule, b []byte) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch {
	case r.Type != "":
		if mk := m.maskers[r.Type]; mk != nil {
			return mk.Mask(string(b))
		}
	case r.Hasher != nil:
		return r.Hasher.Hash(b)
	case r.Hash != "":
		if h := m.hashers[r.Hash]; h != nil {
			return h.Hash(b)
		}
	}
	return r.Replacement
}

// wrap decorates containers and indirections; a non-nil rule forces
// masking of every string below.
func (m *Masking) wrap(v jason.Value, r *Rule) jason.Value {
	if v == nil {
		return nil
	}
	switch v.Kind() {
	case jason.KindArray, jason.KindObject, jason.KindExternal:
		return &view{Value: v, m: m, rule: r}
	case jason.KindString:
		if r != nil {
			return jason.String(m.apply(r, v.Bytes()))
		}
	}
	return v
}

// view masks the children of one container.
type view struct {
	jason.Value
	m    *Masking
	rule *Rule
}

func (v *view) At(i int) jason.Value {
	return v.m.wrap(v.Value.At(i), v.rule)
}

func (v *view) ValueAt(i int) jason.Value {
	r := v.rule
	if r == nil {
		if k := v.Value.KeyAt(i); k != nil && k.Kind() == jason.KindString {
			if found, ok := v.m.rules[string(k.Bytes())]; ok {
				r = &found
			}
		}
	}
	return v.m.wrap(v.Value.ValueAt(i), r)
}

func (v *view) Target() jason.Value {
	return v.m.wrap(v.Value.Target(), v.rule)
}
