package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Export kinds produced by the upstream analyzer.
const (
	KindClass     = "class"
	KindInterface = "interface"
	KindType      = "type"
	KindFunction  = "function"
	KindConst     = "const"
)

// Member kinds within classes, interfaces, and object-like type aliases.
const (
	MemberConstructor    = "constructor"
	MemberProperty       = "property"
	MemberMethod         = "method"
	MemberGetter         = "getter"
	MemberSetter         = "setter"
	MemberCallSignature  = "call-signature"
	MemberIndexSignature = "index-signature"
	MemberMappedType     = "mapped-type"
)

// Reference is a complete API export tree.
type Reference struct {
	Metadata Metadata `json:"metadata"`
	Folders  []Group  `json:"folders"`
}

// Metadata describes the analyzed package.
type Metadata struct {
	Package     string `json:"package,omitempty"`
	GeneratedAt string `json:"generated_at,omitempty"`
}

// Group is one source directory worth of files.
type Group struct {
	Name        string `json:"name"`
	Path        string `json:"path,omitempty"`
	Description string `json:"description,omitempty"`
	Files       []File `json:"files,omitempty"`
}

// DisplayPath returns the group's full path, falling back to its name for
// top-level groups that carry no separate path.
func (g Group) DisplayPath() string {
	if g.Path != "" {
		return g.Path
	}
	return g.Name
}

// File is one source file and its public exports.
type File struct {
	Name    string   `json:"name"`
	Path    string   `json:"path,omitempty"`
	Exports []Export `json:"exports,omitempty"`
}

// BaseName returns the file name without its source extension, as used in
// anchor slugs.
func (f File) BaseName() string {
	return strings.TrimSuffix(f.Name, ".ts")
}

// Export is one public symbol.
type Export struct {
	Kind              string      `json:"kind"`
	Name              string      `json:"name"`
	Signature         string      `json:"signature,omitempty"`
	JSDoc             JSDoc       `json:"jsdoc,omitempty"`
	Extends           []string    `json:"extends,omitempty"`
	Implements        []string    `json:"implements,omitempty"`
	Members           []Member    `json:"members,omitempty"`
	Parameters        []Parameter `json:"parameters,omitempty"`
	ReturnType        string      `json:"returnType,omitempty"`
	ReturnDescription string      `json:"returnDescription,omitempty"`
	Type              string      `json:"type,omitempty"`
}

// JSDoc carries the documentation comment attached to a symbol.
type JSDoc struct {
	Description string `json:"description,omitempty"`
}

// Member is one class, interface, or type-alias member.
type Member struct {
	Kind              string      `json:"kind"`
	Name              string      `json:"name,omitempty"`
	Signature         string      `json:"signature,omitempty"`
	JSDoc             JSDoc       `json:"jsdoc,omitempty"`
	Parameters        []Parameter `json:"parameters,omitempty"`
	ReturnType        string      `json:"returnType,omitempty"`
	ReturnDescription string      `json:"returnDescription,omitempty"`
	Type              string      `json:"type,omitempty"`
	KeyType           string      `json:"keyType,omitempty"`
	Readonly          bool        `json:"readonly,omitempty"`
	Static            bool        `json:"static,omitempty"`
	Async             bool        `json:"async,omitempty"`
	Optional          bool        `json:"optional,omitempty"`
}

// Parameter is one function, method, or constructor parameter.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Optional    bool   `json:"optional,omitempty"`
	Description string `json:"description,omitempty"`
}

// ReadJSON decodes an export tree from r. Exports must at least carry a
// name; anything else is optional, matching the loose upstream format.
func ReadJSON(r io.Reader) (*Reference, error) {
	var ref Reference
	if err := json.NewDecoder(r).Decode(&ref); err != nil {
		return nil, fmt.Errorf("decode export tree: %w", err)
	}
	for _, group := range ref.Folders {
		for _, file := range group.Files {
			for _, exp := range file.Exports {
				if exp.Name == "" {
					return nil, fmt.Errorf("file %s: export without a name", file.Name)
				}
			}
		}
	}
	return &ref, nil
}

// ImportJSON reads an export tree from a JSON file at path.
func ImportJSON(path string) (*Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
