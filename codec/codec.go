package codec

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/ospv/errors"
	"github.com/wippyai/ospv/schema"
)

// Format is a text encoding for artifacts.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.InvalidInput(errors.PhaseEncode, fmt.Sprintf("unknown format %q", s))
	}
}

// FormatFromPath picks YAML for .yaml and .yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// Options controls rendering.
type Options struct {
	Format Format
	// Pretty selects indented output. Compact YAML uses flow style.
	Pretty bool
}

// DefaultOptions renders JSON, pretty in debug builds and compact otherwise.
func DefaultOptions() Options {
	return Options{Format: FormatJSON, Pretty: prettyByDefault}
}

const indent = 2

// Render encodes a into text.
func Render(a *schema.Artifact, opts Options) ([]byte, error) {
	format := opts.Format
	if format == "" {
		format = FormatJSON
	}

	data, err := json.Marshal(a)
	if err != nil {
		return nil, errors.Serialization(errors.PhaseEncode, string(format), err)
	}

	switch format {
	case FormatJSON:
		if !opts.Pretty {
			return data, nil
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", strings.Repeat(" ", indent)); err != nil {
			return nil, errors.Serialization(errors.PhaseEncode, string(format), err)
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil

	case FormatYAML:
		out, err := jsonToYAML(data, opts.Pretty)
		if err != nil {
			return nil, errors.Serialization(errors.PhaseEncode, string(format), err)
		}
		return out, nil

	default:
		return nil, errors.Unsupported(errors.PhaseEncode, fmt.Sprintf("format %q", format))
	}
}

// Parse decodes an artifact from text in the given format. The text must
// hold exactly one document; use ParseStream for framed output of several
// artifacts.
func Parse(data []byte, format Format) (*schema.Artifact, error) {
	if format == "" {
		format = FormatJSON
	}

	switch format {
	case FormatJSON:
	case FormatYAML:
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, errors.Serialization(errors.PhaseDecode, string(format), err)
		}
		data = converted
	default:
		return nil, errors.Unsupported(errors.PhaseDecode, fmt.Sprintf("format %q", format))
	}

	var a schema.Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, errors.Serialization(errors.PhaseDecode, string(format), err)
	}
	return &a, nil
}

// Document frames rendered text as one document of a stream. YAML
// documents open with a "---" marker and JSON documents end with a newline,
// so compact JSON streams are one artifact per line.
func Document(text []byte, format Format) []byte {
	switch {
	case format == FormatYAML && !bytes.HasPrefix(text, []byte("---")):
		return append([]byte("---\n"), text...)
	case format != FormatYAML && !bytes.HasSuffix(text, []byte("\n")):
		return append(text[:len(text):len(text)], '\n')
	default:
		return text
	}
}

// ParseStream decodes every artifact in a stream of documents, as written
// by rendering each artifact through Document.
func ParseStream(data []byte, format Format) ([]*schema.Artifact, error) {
	if format == "" {
		format = FormatJSON
	}

	var out []*schema.Artifact
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		for {
			var a schema.Artifact
			err := dec.Decode(&a)
			if stderrors.Is(err, io.EOF) {
				return out, nil
			}
			if err != nil {
				return nil, errors.Serialization(errors.PhaseDecode, string(format), err)
			}
			out = append(out, &a)
		}

	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		for {
			var v any
			err := dec.Decode(&v)
			if stderrors.Is(err, io.EOF) {
				return out, nil
			}
			if err != nil {
				return nil, errors.Serialization(errors.PhaseDecode, string(format), err)
			}
			if v == nil {
				continue
			}
			converted, err := json.Marshal(stringKeys(v))
			if err != nil {
				return nil, errors.Serialization(errors.PhaseDecode, string(format), err)
			}
			var a schema.Artifact
			if err := json.Unmarshal(converted, &a); err != nil {
				return nil, errors.Serialization(errors.PhaseDecode, string(format), err)
			}
			out = append(out, &a)
		}

	default:
		return nil, errors.Unsupported(errors.PhaseDecode, fmt.Sprintf("format %q", format))
	}
}

// jsonToYAML re-emits a JSON document as YAML. JSON is valid YAML, so the
// document is parsed into nodes and only the presentation style changes.
func jsonToYAML(data []byte, block bool) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if block {
		resetStyle(&doc)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(&doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// resetStyle drops flow and quoting styles. The encoder still quotes
// strings that would otherwise read back as another type.
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}

// yamlToJSON converts a single YAML document. Trailing documents are an
// error rather than being dropped.
func yamlToJSON(data []byte) ([]byte, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var v any
	if err := dec.Decode(&v); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !stderrors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("more than one YAML document")
	}
	return json.Marshal(stringKeys(v))
}

// stringKeys rewrites mappings with non-string keys, such as an unquoted
// decoration index, into JSON-compatible maps.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = stringKeys(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = stringKeys(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = stringKeys(e)
		}
		return t
	default:
		return v
	}
}
