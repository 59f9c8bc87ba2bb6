package markdown

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cliscribe/cliscribe/pkg/export"
)

// RenderAPIReference renders an API export tree as a Markdown reference
// document: groups become H2 sections, files become `---`-separated H3
// sections, exports become H4 entries with their members below.
func RenderAPIReference(ref *export.Reference, cfg Config) string {
	var sections []string

	if cfg.Title != "" {
		sections = append(sections, "# "+cfg.Title+"\n")
	}
	if cfg.IncludeMetadata {
		if ref.Metadata.Package != "" {
			sections = append(sections, fmt.Sprintf("*Package: %s*\n", ref.Metadata.Package))
		}
		if ref.Metadata.GeneratedAt != "" {
			sections = append(sections, fmt.Sprintf("*Generated: %s*\n", ref.Metadata.GeneratedAt))
		}
	}
	sections = append(sections, apiIntroduction(ref.Metadata.Package))

	if cfg.IncludeTOC {
		if toc := apiTOC(ref); toc != "" {
			sections = append(sections, "## Table of Contents\n", toc, "\n---\n")
		}
	}
	for _, group := range ref.Folders {
		sections = append(sections, renderGroup(group))
	}

	if cfg.RenderFooter != nil {
		sections = append(sections, cfg.RenderFooter())
	}
	return strings.Join(sections, "\n")
}

func apiIntroduction(pkg string) string {
	library := "the library"
	if pkg != "" {
		library = "the " + pkg + " library"
	}
	return fmt.Sprintf(`This document provides a comprehensive reference for all public APIs in %s.

Each section is organized by module, with classes, interfaces, types, and functions documented with their full signatures, parameters, and return types.
`, library)
}

func apiTOC(ref *export.Reference) string {
	var lines []string
	for _, group := range ref.Folders {
		path := group.DisplayPath()
		display := titleCase(strings.ReplaceAll(path, "/", " / "))
		lines = append(lines, fmt.Sprintf("- [%s](#%s)", display, Slugify(path)))

		for _, file := range group.Files {
			base := file.BaseName()
			for _, exp := range file.Exports {
				slug := Slugify(path + "-" + base + "-" + exp.Name)
				lines = append(lines, fmt.Sprintf("  - [%s](#%s)", exp.Name, slug))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// titleCase capitalizes the first letter of every alphabetic run, the way
// group paths are displayed in headings.
func titleCase(s string) string {
	runes := []rune(s)
	prevLetter := false
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if prevLetter {
				runes[i] = unicode.ToLower(r)
			} else {
				runes[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(runes)
}

func renderGroup(g export.Group) string {
	path := g.DisplayPath()
	sections := []string{"\n## " + titleCase(strings.ReplaceAll(path, "/", " / ")) + "\n"}

	if g.Description != "" {
		sections = append(sections, g.Description+"\n")
	}
	for _, file := range g.Files {
		sections = append(sections, renderFile(file))
	}
	return strings.Join(sections, "\n")
}

func renderFile(f export.File) string {
	if len(f.Exports) == 0 {
		return ""
	}
	sections := []string{"\n---\n", fmt.Sprintf("### `%s`\n", f.Path)}
	for _, exp := range f.Exports {
		sections = append(sections, renderExport(exp))
	}
	return strings.Join(sections, "\n")
}

func renderExport(e export.Export) string {
	switch e.Kind {
	case export.KindClass:
		return renderClass(e)
	case export.KindInterface:
		return renderInterface(e)
	case export.KindType:
		return renderTypeAlias(e)
	case export.KindFunction:
		return renderFunction(e)
	case export.KindConst:
		return renderConst(e)
	}
	return ""
}

func membersOfKind(members []export.Member, kind string) []export.Member {
	var out []export.Member
	for _, m := range members {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

func codeList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "`" + item + "`"
	}
	return strings.Join(quoted, ", ")
}

func renderClass(e export.Export) string {
	sections := []string{
		fmt.Sprintf("\n#### %s\n", e.Name),
		"**Type:** Class\n",
	}
	if e.JSDoc.Description != "" {
		sections = append(sections, e.JSDoc.Description+"\n")
	}
	if len(e.Extends) > 0 {
		sections = append(sections, fmt.Sprintf("**Extends:** %s\n", codeList(e.Extends)))
	}
	if len(e.Implements) > 0 {
		sections = append(sections, fmt.Sprintf("**Implements:** %s\n", codeList(e.Implements)))
	}

	groups := []struct {
		heading string
		kind    string
		render  func(export.Member) string
	}{
		{"Constructor", export.MemberConstructor, renderConstructor},
		{"Properties", export.MemberProperty, renderProperty},
		{"Methods", export.MemberMethod, renderMethod},
		{"Getters", export.MemberGetter, renderAccessor},
		{"Setters", export.MemberSetter, renderAccessor},
	}
	for _, grp := range groups {
		members := membersOfKind(e.Members, grp.kind)
		if len(members) == 0 {
			continue
		}
		sections = append(sections, fmt.Sprintf("\n#### %s\n", grp.heading))
		for _, m := range members {
			sections = append(sections, grp.render(m))
		}
	}
	return strings.Join(sections, "\n")
}

func renderInterface(e export.Export) string {
	sections := []string{
		fmt.Sprintf("\n#### %s\n", e.Name),
		"**Type:** Interface\n",
	}
	if e.JSDoc.Description != "" {
		sections = append(sections, e.JSDoc.Description+"\n")
	}
	if len(e.Extends) > 0 {
		sections = append(sections, fmt.Sprintf("**Extends:** %s\n", codeList(e.Extends)))
	}

	groups := []struct {
		heading string
		kind    string
		render  func(export.Member) string
	}{
		{"Properties", export.MemberProperty, renderProperty},
		{"Methods", export.MemberMethod, renderMethod},
		{"Call Signatures", export.MemberCallSignature, renderCallSignature},
	}
	for _, grp := range groups {
		members := membersOfKind(e.Members, grp.kind)
		if len(members) == 0 {
			continue
		}
		sections = append(sections, fmt.Sprintf("\n#### %s\n", grp.heading))
		for _, m := range members {
			sections = append(sections, grp.render(m))
		}
	}
	return strings.Join(sections, "\n")
}

func renderTypeAlias(e export.Export) string {
	sections := []string{
		fmt.Sprintf("\n#### %s\n", e.Name),
		"**Type:** Type Alias\n",
	}
	if e.JSDoc.Description != "" {
		sections = append(sections, e.JSDoc.Description+"\n")
	}
	sections = append(sections,
		"**Signature:**\n",
		fmt.Sprintf("```typescript\n%s\n```", e.Signature))

	groups := []struct {
		kind   string
		render func(export.Member) string
	}{
		{export.MemberProperty, renderProperty},
		{export.MemberMethod, renderMethod},
		{export.MemberIndexSignature, renderIndexSignature},
		{export.MemberMappedType, renderMappedType},
		{export.MemberCallSignature, renderCallSignature},
	}
	wroteHeader := false
	for _, grp := range groups {
		members := membersOfKind(e.Members, grp.kind)
		if len(members) == 0 {
			continue
		}
		if !wroteHeader {
			sections = append(sections, "\n**Type Members:**\n")
			wroteHeader = true
		}
		for _, m := range members {
			sections = append(sections, strings.TrimLeft(grp.render(m), "\n"))
		}
	}
	return strings.Join(sections, "\n")
}

func renderFunction(e export.Export) string {
	sections := []string{
		fmt.Sprintf("\n#### %s\n", e.Name),
		"**Type:** Function\n",
	}
	if e.JSDoc.Description != "" {
		sections = append(sections, e.JSDoc.Description+"\n")
	}
	sections = append(sections,
		"**Signature:**\n",
		fmt.Sprintf("```typescript\n%s\n```", e.Signature))

	if len(e.Parameters) > 0 {
		sections = append(sections, renderParameters(e.Parameters))
	}
	if e.ReturnType != "" && e.ReturnType != "void" {
		sections = append(sections, formatReturn(e.ReturnType, e.ReturnDescription))
	}
	return strings.Join(sections, "\n")
}

func renderConst(e export.Export) string {
	sections := []string{
		fmt.Sprintf("\n#### %s\n", e.Name),
		"**Type:** Constant\n",
	}
	if e.JSDoc.Description != "" {
		sections = append(sections, e.JSDoc.Description+"\n")
	}
	if e.Type != "" {
		sections = append(sections, fmt.Sprintf("**Value Type:** `%s`\n", e.Type))
	}
	return strings.Join(sections, "\n")
}

func renderConstructor(m export.Member) string {
	var sections []string
	if m.JSDoc.Description != "" {
		sections = append(sections, m.JSDoc.Description+"\n")
	}
	sections = append(sections,
		"**Signature:**\n",
		fmt.Sprintf("```typescript\n%s\n```", m.Signature))
	if len(m.Parameters) > 0 {
		sections = append(sections, renderParameters(m.Parameters))
	}
	return strings.Join(sections, "\n")
}

func renderProperty(m export.Member) string {
	sections := []string{fmt.Sprintf("\n##### %s\n", m.Name)}
	if m.JSDoc.Description != "" {
		sections = append(sections, m.JSDoc.Description+"\n")
	}
	sections = append(sections, fmt.Sprintf("**Type:** `%s`\n", m.Type))
	return strings.Join(sections, "\n")
}

func renderMethod(m export.Member) string {
	sections := []string{fmt.Sprintf("\n##### %s\n", m.Name)}
	if m.JSDoc.Description != "" {
		sections = append(sections, m.JSDoc.Description+"\n")
	}
	sections = append(sections,
		"**Signature:**\n",
		fmt.Sprintf("```typescript\n%s\n```", m.Signature))
	if len(m.Parameters) > 0 {
		sections = append(sections, renderParameters(m.Parameters))
	}
	if m.ReturnType != "" {
		sections = append(sections, formatReturn(m.ReturnType, m.ReturnDescription))
	}
	return strings.Join(sections, "\n")
}

func renderAccessor(m export.Member) string {
	sections := []string{fmt.Sprintf("\n##### %s (%s)\n", m.Name, m.Kind)}
	if m.JSDoc.Description != "" {
		sections = append(sections, m.JSDoc.Description+"\n")
	}
	sections = append(sections,
		"**Signature:**\n",
		fmt.Sprintf("```typescript\n%s\n```", m.Signature))
	if len(m.Parameters) > 0 {
		sections = append(sections, renderParameters(m.Parameters))
	}
	if m.ReturnType != "" && m.Kind == export.MemberGetter {
		sections = append(sections, fmt.Sprintf("\n**Returns:** `%s`", m.ReturnType))
	}
	return strings.Join(sections, "\n")
}

func renderCallSignature(m export.Member) string {
	var sections []string
	if m.JSDoc.Description != "" {
		sections = append(sections, m.JSDoc.Description+"\n")
	}
	sections = append(sections,
		"**Signature:**\n",
		fmt.Sprintf("```typescript\n%s\n```", m.Signature))
	if len(m.Parameters) > 0 {
		sections = append(sections, renderParameters(m.Parameters))
	}
	if m.ReturnType != "" {
		sections = append(sections, formatReturn(m.ReturnType, m.ReturnDescription))
	}
	return strings.Join(sections, "\n")
}

func renderIndexSignature(m export.Member) string {
	sections := []string{fmt.Sprintf("\n##### %s\n", m.Name)}
	if m.JSDoc.Description != "" {
		sections = append(sections, m.JSDoc.Description+"\n")
	}
	sections = append(sections,
		fmt.Sprintf("**Signature:** `%s`\n", m.Signature),
		fmt.Sprintf("**Value Type:** `%s`\n", orAny(m.Type)))
	return strings.Join(sections, "\n")
}

func renderMappedType(m export.Member) string {
	sections := []string{fmt.Sprintf("\n##### %s\n", m.Name)}
	if m.JSDoc.Description != "" {
		sections = append(sections, m.JSDoc.Description+"\n")
	}
	sections = append(sections,
		fmt.Sprintf("**Signature:** `%s`\n", m.Signature),
		fmt.Sprintf("**Key Type:** `%s`\n", orAny(m.KeyType)),
		fmt.Sprintf("**Value Type:** `%s`\n", orAny(m.Type)))
	return strings.Join(sections, "\n")
}

func orAny(t string) string {
	if t == "" {
		return "any"
	}
	return t
}

func renderParameters(params []export.Parameter) string {
	sections := []string{"\n**Parameters:**\n"}
	for _, p := range params {
		name := "`" + p.Name + "`"
		if p.Optional {
			name += " (optional)"
		}
		sections = append(sections, fmt.Sprintf("- %s: `%s`", name, p.Type))
		if p.Description != "" {
			sections = append(sections, "  - "+p.Description)
		}
	}
	return strings.Join(sections, "\n")
}

// formatReturn renders a returns section, using a fenced block for
// multi-line types whose braces would otherwise trip MDX parsing.
func formatReturn(returnType, description string) string {
	sections := []string{"\n**Returns:**\n"}
	if strings.Contains(returnType, "\n") {
		sections = append(sections, fmt.Sprintf("```typescript\n%s\n```", returnType))
		if description != "" {
			sections = append(sections, "\n"+description)
		}
	} else {
		line := "`" + returnType + "`"
		if description != "" {
			line += " - " + description
		}
		sections = append(sections, line)
	}
	return strings.Join(sections, "\n")
}
