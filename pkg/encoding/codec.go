package encoding

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/zeusync/contentdb/pkg/generic"
	"gopkg.in/yaml.v3"
)

var ErrUnknownCodec = errors.New("unknown codec")

// Codec converts values to and from a textual representation.
// Unmarshal is expected to be called on a freshly allocated value; codecs do
// not promise anything about merging into populated maps.
type Codec interface {
	Name() string
	Extension() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var (
	JSON Codec = jsonCodec{indent: "  "}
	YAML Codec = yamlCodec{}
)

// ByName resolves "json" or "yaml" (case-insensitive).
func ByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodec, name)
	}
}

var buffers = generic.NewResetPool(func() *bytes.Buffer { return new(bytes.Buffer) }, (*bytes.Buffer).Reset)

type jsonCodec struct {
	indent string
}

func (jsonCodec) Name() string      { return "json" }
func (jsonCodec) Extension() string { return ".json" }

func (c jsonCodec) Marshal(v any) ([]byte, error) {
	buf := buffers.Get()
	defer buffers.Put(buf)

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if c.indent != "" {
		enc.SetIndent("", c.indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	// Encode terminates every value with a newline
	out := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
	return bytes.Clone(out), nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

type yamlCodec struct{}

func (yamlCodec) Name() string      { return "yaml" }
func (yamlCodec) Extension() string { return ".yaml" }

func (yamlCodec) Marshal(v any) ([]byte, error) {
	buf := buffers.Get()
	defer buffers.Put(buf)

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}

func (yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
