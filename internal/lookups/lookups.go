package lookups

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lookup is one entry of a batch file.
type Lookup struct {
	ID        string            `json:"id" yaml:"id"`
	Operation string            `json:"operation" yaml:"operation"`
	Params    map[string]string `json:"params" yaml:"params"`
	Raw       *bool             `json:"raw,omitempty" yaml:"raw,omitempty"`
}

type batchFile struct {
	Lookups []Lookup `json:"lookups" yaml:"lookups"`
}

// LoadFile reads a YAML or JSON batch file and validates every entry.
func LoadFile(path string) ([]Lookup, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("lookups file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lookups file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read lookups file: %w", err)
	}

	return Parse(raw, filepath.Ext(path))
}

// Parse decodes batch file contents. ext selects the format; an empty ext
// tries YAML then JSON.
func Parse(data []byte, ext string) ([]Lookup, error) {
	batch, err := parseBatch(data, ext)
	if err != nil {
		return nil, err
	}
	if len(batch.Lookups) == 0 {
		return nil, errors.New("lookups file contains no lookups entries")
	}

	seen := make(map[string]struct{}, len(batch.Lookups))
	for i := range batch.Lookups {
		l := sanitizeLookup(batch.Lookups[i])
		if l.ID == "" {
			l.ID = fmt.Sprintf("lookup-%d", i+1)
		}
		if err := Validate(l); err != nil {
			return nil, fmt.Errorf("lookup[%d]: %w", i, err)
		}
		if _, exists := seen[l.ID]; exists {
			return nil, fmt.Errorf("duplicate lookup id %q", l.ID)
		}
		seen[l.ID] = struct{}{}
		batch.Lookups[i] = l
	}

	return batch.Lookups, nil
}

func parseBatch(data []byte, ext string) (batchFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   unmarshalFn
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		if batch, err := unmarshalBatch(d.name, data, d.fn); err == nil {
			return batch, nil
		}
	}

	return batchFile{}, errors.New("lookups file format not recognized (expected YAML or JSON)")
}

type unmarshalFn func([]byte, any) error

func unmarshalBatch(name string, data []byte, fn unmarshalFn) (batchFile, error) {
	var batch batchFile
	if err := fn(data, &batch); err != nil {
		return batchFile{}, fmt.Errorf("decode %s lookups: %w", name, err)
	}
	return batch, nil
}

func sanitizeLookup(l Lookup) Lookup {
	l.ID = strings.TrimSpace(l.ID)
	l.Operation = strings.TrimSpace(l.Operation)

	params := make(map[string]string, len(l.Params))
	for k, v := range l.Params {
		params[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	l.Params = params
	return l
}

// Validate checks that the operation is known and its required params are set.
func Validate(l Lookup) error {
	if l.Operation == "" {
		return fmt.Errorf("operation is required for lookup %q", l.ID)
	}
	op, ok := operationFor(l.Operation)
	if !ok {
		return fmt.Errorf("unknown operation %q for lookup %q", l.Operation, l.ID)
	}
	for _, name := range op.required {
		if l.Params[name] == "" {
			return fmt.Errorf("param %q is required for %s (lookup %q)", name, op.name, l.ID)
		}
	}
	return nil
}
