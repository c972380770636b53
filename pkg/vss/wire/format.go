package wire

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hsiuhsiu/vss-go/pkg/vss"
)

// Format selects a document serialization.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", vss.Errorf("ParseFormat", "%w: unknown format %q", vss.ErrEncoding, s)
}

// FormatForPath picks YAML for .yaml and .yml files and JSON otherwise.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	if f == YAML {
		return ".yaml"
	}
	return ".json"
}

// Marshal serializes a ShareDocument or CommitmentDocument.
func Marshal(f Format, doc any) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	switch f {
	case JSON:
		b, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			b = append(b, '\n')
		}
	case YAML:
		b, err = yaml.Marshal(doc)
	default:
		return nil, vss.Errorf("Marshal", "%w: unknown format %q", vss.ErrEncoding, f)
	}
	if err != nil {
		return nil, vss.Errorf("Marshal", "%w: %v", vss.ErrEncoding, err)
	}
	return b, nil
}

// Unmarshal parses data into doc, which must be a pointer to a document.
// Unknown JSON fields are rejected.
func Unmarshal(f Format, data []byte, doc any) error {
	var err error
	switch f {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(doc)
	case YAML:
		err = yaml.Unmarshal(data, doc)
	default:
		return vss.Errorf("Unmarshal", "%w: unknown format %q", vss.ErrEncoding, f)
	}
	if err != nil {
		return vss.Errorf("Unmarshal", "%w: %v", vss.ErrEncoding, err)
	}
	return nil
}
