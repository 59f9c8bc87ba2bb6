// Package markdown renders scan reports and API export trees into
// deterministic Markdown reference documents, and verifies rendered
// documents for common generation defects.
//
// Rendering is a pure function of its inputs: the same report and [Config]
// always produce byte-identical output. Document order is fixed as title,
// metadata, introduction (API mode only), table of contents, body. All text
// that originates in captured help output is escaped so angle brackets and
// table pipes survive downstream MDX processing.
//
// Header and footer rendering are injectable as function values on [Config];
// everything else is driven by data.
package markdown
