package vectors

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/zoobzio/cloak"
	"github.com/zoobzio/cloak/bson"
	"github.com/zoobzio/cloak/cbor"
	"github.com/zoobzio/cloak/json"
	"github.com/zoobzio/cloak/msgpack"
	"github.com/zoobzio/cloak/xml"
	"github.com/zoobzio/cloak/yaml"
)

// Builtin format names.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
	FormatCBOR    = "cbor"
	FormatXML     = "xml"
	FormatBSON    = "bson"
)

// builtinFactories returns the default codec constructors by format.
func builtinFactories() map[string]func() cloak.Codec {
	return map[string]func() cloak.Codec{
		FormatJSON:    json.New,
		FormatYAML:    yaml.New,
		FormatMsgpack: msgpack.New,
		FormatCBOR:    cbor.New,
		FormatXML:     xml.New,
		FormatBSON:    bson.New,
	}
}

// extensions maps file extensions to format names.
var extensions = map[string]string{
	".json":    FormatJSON,
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
	".msgpack": FormatMsgpack,
	".mpk":     FormatMsgpack,
	".cbor":    FormatCBOR,
	".xml":     FormatXML,
	".bson":    FormatBSON,
}

var (
	factories  = builtinFactories()
	codecs     = make(map[string]cloak.Codec)
	registryMu sync.RWMutex
)

// Register adds or replaces the codec for format.
func Register(format string, factory func() cloak.Codec) {
	registryMu.Lock()
	defer registryMu.Unlock()
	format = strings.ToLower(format)
	factories[format] = factory
	delete(codecs, format)
}

// Use returns the cached codec for format, building it on first use.
func Use(format string) (cloak.Codec, error) {
	format = strings.ToLower(format)

	// Fast path: read-lock cache check
	registryMu.RLock()
	if c, ok := codecs[format]; ok {
		registryMu.RUnlock()
		return c, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if c, ok := codecs[format]; ok {
		return c, nil
	}

	factory, ok := factories[format]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	c := factory()
	codecs[format] = c
	return c, nil
}

// FormatFor returns the format registered for the extension of path.
func FormatFor(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
}

// Formats returns the registered format names in sorted order.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset restores the builtin codecs and clears the cache.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories = builtinFactories()
	codecs = make(map[string]cloak.Codec)
}
