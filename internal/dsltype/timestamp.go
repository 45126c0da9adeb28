package dsltype

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// TimestampType constructs UTC time values.  Four call shapes are
// accepted: no argument for the current time, numeric Unix seconds, a
// string with an optional layout, and a structured map carrying either
// form.
type TimestampType struct {
	Clock func() time.Time
}

func NewTimestampType(clock func() time.Time) TimestampType {
	if clock == nil {
		clock = time.Now
	}
	return TimestampType{Clock: clock}
}

func (t TimestampType) Name() string { return "timestamp" }

func (t TimestampType) Construct(_ context.Context, args ...any) (any, error) {
	value, err := t.construct(args)
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (t TimestampType) construct(args []any) (time.Time, error) {
	switch len(args) {
	case 0:
		return t.Clock().UTC(), nil
	case 1:
		return t.fromArg(args[0])
	case 2:
		value, okValue := args[0].(string)
		layout, okLayout := args[1].(string)
		if !okValue || !okLayout {
			return time.Time{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("timestamp with two arguments takes a string value and a layout")
		}
		return parseWithLayout(value, layout)
	default:
		return time.Time{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("timestamp takes at most two arguments, got %d", len(args)))
	}
}

func (t TimestampType) fromArg(arg any) (time.Time, error) {
	switch value := arg.(type) {
	case int:
		return fromUnixSeconds(float64(value)), nil
	case int64:
		return fromUnixSeconds(float64(value)), nil
	case float64:
		return fromUnixSeconds(value), nil
	case string:
		return parseFlexible(value)
	case map[string]any:
		return t.fromMap(value)
	default:
		return time.Time{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported timestamp argument type %T", arg))
	}
}

// fromMap handles the structured form: {"seconds": n} or
// {"string": s} with an optional "format".
func (t TimestampType) fromMap(arg map[string]any) (time.Time, error) {
	if seconds, ok := arg["seconds"]; ok {
		switch value := seconds.(type) {
		case int:
			return fromUnixSeconds(float64(value)), nil
		case int64:
			return fromUnixSeconds(float64(value)), nil
		case float64:
			return fromUnixSeconds(value), nil
		default:
			return time.Time{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("timestamp seconds must be numeric, got %T", seconds))
		}
	}
	raw, ok := arg["string"]
	if !ok {
		return time.Time{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("structured timestamp needs a seconds or string entry")
	}
	value, ok := raw.(string)
	if !ok {
		return time.Time{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("timestamp string entry must be a string, got %T", raw))
	}
	if rawLayout, ok := arg["format"]; ok {
		layout, okLayout := rawLayout.(string)
		if !okLayout {
			return time.Time{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("timestamp format entry must be a string, got %T", rawLayout))
		}
		return parseWithLayout(value, layout)
	}
	return parseFlexible(value)
}

func fromUnixSeconds(seconds float64) time.Time {
	sec, frac := math.Modf(seconds)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC()
}

func parseWithLayout(value string, layout string) (time.Time, error) {
	parsed, err := time.Parse(layout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse timestamp").
			WithCause(err)
	}
	return parsed.UTC(), nil
}

// parseFlexible tries the layouts timestamps show up in when no
// explicit format is given.
func parseFlexible(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05 -0700 MST",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unrecognized timestamp: %s", value))
}
