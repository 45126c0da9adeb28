package core

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"portquery/internal/types"
)

// searchLine matches one "Label: value" line of ports tree search
// output.  Anything else in a paragraph is noise and dropped.
var searchLine = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_-]*):[ \t]*(.*)$`)

// fieldRenames maps historical output labels to canonical field names.
var fieldRenames = map[types.Field]types.Field{
	"port": types.FieldName,
}

type ParseOptions struct {
	IncludeMoved bool
}

// ParseSearchOutput splits raw ports tree search output into
// blank-line delimited paragraphs and builds one record per paragraph.
// Duplicate labels keep the last value.  Paragraphs describing moved
// or removed ports are skipped unless opted in.
func ParseSearchOutput(ctx context.Context, raw string, opts ParseOptions) []types.Record {
	var records []types.Record
	moved := 0
	for _, paragraph := range splitParagraphs(raw) {
		record := parseParagraph(paragraph)
		if len(record.Fields) == 0 {
			continue
		}
		if record.Has(types.FieldMoved) && !opts.IncludeMoved {
			moved++
			continue
		}
		records = append(records, record)
	}
	log.Ctx(ctx).Debug().
		Int("records", len(records)).
		Int("moved", moved).
		Msg("search output parsed")
	return records
}

func splitParagraphs(raw string) []string {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.Split(normalized, "\n\n")
}

func parseParagraph(paragraph string) types.Record {
	record := types.NewRecord()
	for _, line := range strings.Split(paragraph, "\n") {
		match := searchLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		field := normalizeFieldLabel(match[1])
		if renamed, ok := fieldRenames[field]; ok {
			field = renamed
		}
		record.Set(field, strings.TrimSpace(match[2]))
	}
	return record
}

// normalizeFieldLabel lowercases a label and strips separator
// characters, so "B-deps" and "bdeps" name the same field.
func normalizeFieldLabel(label string) types.Field {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return types.Field(b.String())
}
