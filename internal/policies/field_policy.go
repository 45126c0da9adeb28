package policies

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portquery/internal/types"
)

type FieldPolicyMode string

const (
	FieldPolicySilent FieldPolicyMode = "silent"
	FieldPolicyWarn   FieldPolicyMode = "warn"
)

// FieldPolicy controls how unattainable requested fields and skipped
// derivations surface.  Neither is ever an error: silent mode keeps
// the events at debug level, warn mode raises them to warnings.
type FieldPolicy struct {
	Mode FieldPolicyMode
}

func NewFieldPolicy(mode FieldPolicyMode) FieldPolicy {
	if mode != FieldPolicyWarn {
		mode = FieldPolicySilent
	}
	return FieldPolicy{Mode: mode}
}

// DroppedFields reports requested fields that no backend or derivation
// can produce for the record kind.
func (p FieldPolicy) DroppedFields(ctx context.Context, kind types.RecordKind, fields []types.Field) {
	if len(fields) == 0 {
		return
	}
	p.event(ctx).
		Str("kind", string(kind)).
		Str("fields", joinFields(fields)).
		Msg("requested fields cannot be produced")
}

// SkippedDerivation reports a derivation group left unfilled because
// prerequisite fields were missing from the record.
func (p FieldPolicy) SkippedDerivation(ctx context.Context, kind types.RecordKind, derived types.Field, missing []types.Field) {
	p.event(ctx).
		Str("kind", string(kind)).
		Str("field", string(derived)).
		Str("missing", joinFields(missing)).
		Msg("derivation skipped, prerequisites missing")
}

func (p FieldPolicy) event(ctx context.Context) *zerolog.Event {
	if p.Mode == FieldPolicyWarn {
		return log.Ctx(ctx).Warn()
	}
	return log.Ctx(ctx).Debug()
}

func joinFields(fields []types.Field) string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, string(field))
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
