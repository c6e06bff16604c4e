package script

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"
)

// Suite files are a list of entries; each entry is either a bare
// expression string or a map with an "expression" key and an optional
// "expected" result:
//
//	- "1+2"
//	- expression: "2+3 < 4"
//	  expected: false

func ParseYAML(r io.Reader) (*Script, error) {
	yamlBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	jsonBytes, err := yaml.YAMLToJSON(yamlBytes)
	if err != nil {
		return nil, fmt.Errorf("yaml.YAMLToJSON: %w", err)
	}

	return ParseJSON(bytes.NewReader(jsonBytes))
}

func ParseJSON(r io.Reader) (*Script, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var defs []any
	if err := decoder.Decode(&defs); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	return compileSuite(defs)
}

type entryDef struct {
	Expression string `json:"expression" mapstructure:"expression"`
	Expected   any    `json:"expected" mapstructure:"expected"`
}

func compileSuite(defs []any) (*Script, error) {
	entries := make([]Entry, 0, len(defs))
	for i, rawDef := range defs {
		rawDef, err := decodeNumbers(rawDef)
		if err != nil {
			return nil, fmt.Errorf("entry[%d]: %w", i, err)
		}

		switch v := rawDef.(type) {
		case string:
			entries = append(entries, Entry{Source: v})

		case map[string]any:
			var def entryDef
			if err := mapstructure.Decode(v, &def); err != nil {
				return nil, fmt.Errorf("entry[%d]: mapstructure.Decode: %w", i, err)
			}
			if def.Expression == "" {
				return nil, fmt.Errorf("entry[%d]: missing expression", i)
			}
			entries = append(entries, Entry{
				Source:      def.Expression,
				Expected:    def.Expected,
				HasExpected: def.Expected != nil,
			})

		default:
			return nil, fmt.Errorf("entry[%d]: unexpected entry type %T", i, rawDef)
		}
	}

	return &Script{Entries: entries}, nil
}

// decodeNumbers rewrites every json.Number in place into int64 when the
// literal has no decimal point, float64 otherwise.
func decodeNumbers(v any) (any, error) {
	switch vv := v.(type) {
	case map[string]any:
		for key, value := range vv {
			var err error
			vv[key], err = decodeNumbers(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
		}
		return vv, nil

	case []any:
		for i, value := range vv {
			var err error
			vv[i], err = decodeNumbers(value)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return vv, nil

	case json.Number:
		if strings.IndexByte(vv.String(), '.') == -1 {
			if n, err := vv.Int64(); err == nil {
				return n, nil
			}
		}
		return vv.Float64()

	default:
		return v, nil
	}
}
