// Package encode renders definitions and instances in the supported output
// formats.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
	CBOR Format = "cbor"
)

// Formats lists the supported formats.
var Formats = []Format{YAML, JSON, CBOR}

// cborMode uses Core Deterministic Encoding, so equal values always encode
// to identical bytes. TextMarshaler types such as uuid.UUID become strings,
// matching the YAML and JSON renderings; BinaryMarshaler is ignored so it
// cannot take precedence.
var cborMode cbor.EncMode

func init() {
	opts := cbor.CoreDetEncOptions()
	opts.TextMarshaler = cbor.TextMarshalerTextString
	opts.BinaryMarshaler = cbor.BinaryMarshalerNone

	var err error
	cborMode, err = opts.EncMode()
	if err != nil {
		panic("encode: CBOR encoder initialization failed: " + err.Error())
	}
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (supported: yaml, json, cbor)", name)
}

// Write encodes v to w in format f.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case CBOR:
		if err := cborMode.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("failed to encode cbor: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}
