// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hamba/avro/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// schemaReference renders a Markdown field reference for a record
// schema: one table per record, outermost first, in field order.
func schemaReference(root *avro.RecordSchema) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "# %s\n\n", root.Name())
	fmt.Fprintf(&builder, "Namespace `%s`. Fields are listed in wire order.\n", root.Namespace())

	seen := map[string]bool{}
	queue := []*avro.RecordSchema{root}
	for len(queue) > 0 {
		record := queue[0]
		queue = queue[1:]
		if seen[record.FullName()] {
			continue
		}
		seen[record.FullName()] = true

		fmt.Fprintf(&builder, "\n## %s\n\n", record.Name())
		builder.WriteString("| Field | Type | Default | Description |\n")
		builder.WriteString("|---|---|---|---|\n")
		for _, field := range record.Fields() {
			fmt.Fprintf(&builder, "| `%s` | %s | %s | %s |\n",
				field.Name(),
				escapeCell(typeLabel(field.Type())),
				escapeCell(defaultLabel(field)),
				escapeCell(field.Doc()))
			queue = append(queue, nestedRecords(field.Type())...)
		}
	}
	return builder.String()
}

// typeLabel names a field type the way the reference shows it.
func typeLabel(s avro.Schema) string {
	switch typed := s.(type) {
	case *avro.RefSchema:
		return typeLabel(typed.Schema())
	case *avro.RecordSchema:
		return typed.Name()
	case *avro.FixedSchema:
		return fmt.Sprintf("%s (fixed %d)", typed.Name(), typed.Size())
	case *avro.MapSchema:
		return "map<" + typeLabel(typed.Values()) + ">"
	case *avro.ArraySchema:
		return "array<" + typeLabel(typed.Items()) + ">"
	case *avro.UnionSchema:
		labels := make([]string, 0, len(typed.Types()))
		for _, member := range typed.Types() {
			labels = append(labels, typeLabel(member))
		}
		return strings.Join(labels, " | ")
	default:
		return string(s.Type())
	}
}

func defaultLabel(field *avro.Field) string {
	if !field.HasDefault() {
		return ""
	}
	encoded, err := json.Marshal(field.Default())
	if err != nil {
		return fmt.Sprint(field.Default())
	}
	return string(encoded)
}

// nestedRecords returns the records declared inside s. References are
// not followed; the record they name was declared earlier.
func nestedRecords(s avro.Schema) []*avro.RecordSchema {
	switch typed := s.(type) {
	case *avro.RecordSchema:
		return []*avro.RecordSchema{typed}
	case *avro.MapSchema:
		return nestedRecords(typed.Values())
	case *avro.ArraySchema:
		return nestedRecords(typed.Items())
	case *avro.UnionSchema:
		var records []*avro.RecordSchema
		for _, member := range typed.Types() {
			records = append(records, nestedRecords(member)...)
		}
		return records
	default:
		return nil
	}
}

// escapeCell makes text safe inside a GFM table cell.
func escapeCell(text string) string {
	return strings.ReplaceAll(text, "|", `\|`)
}

var referenceMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// renderHTML converts a Markdown reference to an HTML fragment.
func renderHTML(w io.Writer, markdown string) error {
	return referenceMarkdown.Convert([]byte(markdown), w)
}
