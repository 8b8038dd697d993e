package letters

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// tablesFile is the on-disk layout:
//
//	systems:
//	  alpha_to_alpha:
//	    A:
//	      start: alpha1
//	      motions:   [{blue: pro, red: pro}]
//	      rotations: [{blue: cw, red: cw}, {blue: ccw, red: ccw}]
type tablesFile struct {
	Systems Tables `yaml:"systems"`
}

// LoadTables decodes and validates YAML letter tables. Letter keys are
// normalised with ParseLetter. Any defect returns ErrBadTable.
func LoadTables(r io.Reader) (Tables, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f tablesFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("LoadTables: empty document: %w", ErrBadTable)
		}
		return nil, fmt.Errorf("LoadTables: %w: %w", ErrBadTable, err)
	}
	if len(f.Systems) == 0 {
		return nil, fmt.Errorf("LoadTables: no systems: %w", ErrBadTable)
	}

	out := make(Tables, len(f.Systems))
	for sys, letters := range f.Systems {
		m := make(map[Letter]LetterConfig, len(letters))
		for raw, cfg := range letters {
			l, err := ParseLetter(string(raw))
			if err != nil {
				return nil, fmt.Errorf("LoadTables: %s: %w: %w", sys, ErrBadTable, err)
			}
			if _, dup := m[l]; dup {
				return nil, fmt.Errorf("LoadTables: %s letter %q listed twice: %w", sys, l, ErrBadTable)
			}
			m[l] = cfg
		}
		out[sys] = m
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("LoadTables: %w", err)
	}

	return out, nil
}

// LoadTablesFile reads tables from path.
func LoadTablesFile(path string) (Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadTablesFile: %w", err)
	}
	defer f.Close()

	return LoadTables(f)
}

// MarshalTables writes t in the format LoadTables reads.
func MarshalTables(w io.Writer, t Tables) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tablesFile{Systems: t}); err != nil {
		return fmt.Errorf("MarshalTables: %w", err)
	}

	return enc.Close()
}
