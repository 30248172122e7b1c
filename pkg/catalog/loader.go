package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Goden-Gun/rpcerr-lib/pkg/codes"
	"github.com/Goden-Gun/rpcerr-lib/pkg/normalize"
	"github.com/Goden-Gun/rpcerr-lib/pkg/rpcerr"
)

// Document is the on-disk representation of a catalog.
type Document struct {
	Version string     `yaml:"version"`
	Codes   []CodeSpec `yaml:"codes"`
}

// CodeSpec describes one code family.
type CodeSpec struct {
	Code int32 `yaml:"code"`
	// Name defaults to the well-known symbol for Code.
	Name string `yaml:"name"`
	// Default is the kind used when no template matches; defaults to Name.
	Default string `yaml:"default"`
	// Message is the text of the default entry; defaults to "{x}".
	Message string      `yaml:"message"`
	Errors  []EntrySpec `yaml:"errors"`
}

// EntrySpec describes one error kind under a code.
type EntrySpec struct {
	ID string `yaml:"id"`
	// Kind defaults to ID without its trailing placeholder segment.
	Kind    string `yaml:"kind"`
	Message string `yaml:"message"`
}

// ValidationError reports a malformed catalog document.
type ValidationError struct {
	Code   int32
	ID     string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("catalog: code %d entry %q: %s", e.Code, e.ID, e.Reason)
	}
	return fmt.Sprintf("catalog: code %d: %s", e.Code, e.Reason)
}

// Load reads and builds a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from YAML. Unknown fields and multi-document input
// are rejected.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog document is empty")
		}
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); err == nil {
		return nil, errors.New("multiple YAML documents are not allowed")
	} else if !errors.Is(err, io.EOF) {
		return nil, err
	}
	return Build(doc)
}

// MustParse is like Parse but panics on error. Intended for packaged data.
func MustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Build validates doc and produces an immutable catalog. Templates are
// normalized with the same rule the classifier applies to live messages.
func Build(doc Document) (*Catalog, error) {
	if len(doc.Codes) == 0 {
		return nil, errors.New("catalog has no codes")
	}
	c := &Catalog{
		version: doc.Version,
		tables:  make(map[int32]*Table, len(doc.Codes)),
	}
	for _, spec := range doc.Codes {
		if _, dup := c.tables[spec.Code]; dup {
			return nil, &ValidationError{Code: spec.Code, Reason: "duplicate code"}
		}
		t, err := buildTable(spec)
		if err != nil {
			return nil, err
		}
		c.tables[spec.Code] = t
	}
	return c, nil
}

func buildTable(spec CodeSpec) (*Table, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		if known, ok := codes.ByNumeric(spec.Code); ok {
			name = known.Symbol
		}
	}
	defKind := strings.TrimSpace(spec.Default)
	if defKind == "" {
		defKind = name
	}
	if defKind == "" {
		return nil, &ValidationError{Code: spec.Code, Reason: "no default kind"}
	}
	if name == "" {
		name = defKind
	}
	defMessage := spec.Message
	if defMessage == "" {
		defMessage = "{x}"
	}

	t := &Table{
		code:    spec.Code,
		name:    name,
		def:     Entry{ID: name, Kind: rpcerr.Kind(defKind), Message: defMessage},
		entries: make(map[string]Entry, len(spec.Errors)),
	}
	for _, es := range spec.Errors {
		id := strings.TrimSpace(es.ID)
		if id == "" {
			return nil, &ValidationError{Code: spec.Code, Reason: "entry without id"}
		}
		key := normalize.Template(id)
		if prev, dup := t.entries[key]; dup {
			return nil, &ValidationError{Code: spec.Code, ID: id, Reason: fmt.Sprintf("template collides with %q", prev.ID)}
		}
		kind := strings.TrimSpace(es.Kind)
		if kind == "" {
			kind = kindFromID(id)
		}
		msg := es.Message
		if msg == "" {
			msg = id
		}
		t.entries[key] = Entry{ID: id, Kind: rpcerr.Kind(kind), Message: msg}
	}
	return t, nil
}

// kindFromID strips a trailing placeholder segment: FLOOD_WAIT_X -> FLOOD_WAIT.
func kindFromID(id string) string {
	if trimmed := strings.TrimSuffix(id, "_"+normalize.Placeholder); trimmed != "" {
		return trimmed
	}
	return id
}
