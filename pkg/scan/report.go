package scan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON encodes a report as indented JSON and writes it to w. The output
// round-trips through [ReadJSON], so a scan can be captured once and rendered
// many times without re-probing the tool.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// ExportJSON writes a report to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func (r *Report) ExportJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return r.WriteJSON(f)
}

// ReadJSON decodes a scan report from r and validates its shape. Reports
// produced by [Report.WriteJSON] always pass validation; hand-edited files
// get an error naming the offending node. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Report, error) {
	var report Report
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if report.Root == nil {
		return nil, fmt.Errorf("report has no root node")
	}
	if err := validateNode(report.Root); err != nil {
		return nil, err
	}
	return &report, nil
}

// ImportJSON reads a report from a JSON file at path.
func ImportJSON(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func validateNode(n *CommandNode) error {
	if len(n.Path) == 0 {
		return fmt.Errorf("node with empty path")
	}
	switch n.Format {
	case FormatStructured:
		if n.Structured == nil {
			return fmt.Errorf("node %s: structured format without payload", n.Name())
		}
	case FormatSectioned:
		if n.Sectioned == nil {
			return fmt.Errorf("node %s: sectioned format without payload", n.Name())
		}
	case FormatRaw:
	case FormatError:
		if n.Err == nil {
			return fmt.Errorf("node %s: error format without payload", n.Name())
		}
	default:
		return fmt.Errorf("node %s: unknown format %q", n.Name(), n.Format)
	}
	for name, child := range n.Children {
		if child == nil {
			return fmt.Errorf("node %s: nil child %q", n.Name(), name)
		}
		if err := validateNode(child); err != nil {
			return err
		}
	}
	return nil
}
