// Package export models a pre-built API export tree: groups of source files
// whose public exports (classes, interfaces, type aliases, functions,
// constants) were extracted by an upstream analyzer and serialized as JSON.
//
// The package only loads and validates the tree; rendering it into Markdown
// is the markdown package's job. The JSON shape follows the upstream
// analyzer's output, so field names like "folders" and "jsdoc" are fixed.
package export
