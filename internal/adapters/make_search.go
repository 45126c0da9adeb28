package adapters

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"portquery/internal/ports"
	"portquery/internal/shared"
	"portquery/internal/types"
)

// searchKeys are the filters the ports tree search target accepts.
var searchKeys = map[types.SearchKey]struct{}{
	types.SearchKeyName:  {},
	types.SearchKeyKey:   {},
	types.SearchKeyPath:  {},
	types.SearchKeyInfo:  {},
	types.SearchKeyMaint: {},
	types.SearchKeyCat:   {},
	types.SearchKeyBdeps: {},
	types.SearchKeyRdeps: {},
	types.SearchKeyWWW:   {},
}

// MakeSearchAdapter runs the ports tree search target and returns its
// raw paragraph output.
type MakeSearchAdapter struct {
	PortsDir string
	MakeBin  string
}

func NewMakeSearchAdapter(portsDir string) MakeSearchAdapter {
	return MakeSearchAdapter{PortsDir: portsDir, MakeBin: "make"}
}

func (a MakeSearchAdapter) Search(ctx context.Context, filter types.SearchFilter, fields []types.Field) (string, error) {
	args, err := a.searchArgs(filter, fields)
	if err != nil {
		return "", err
	}
	bin := a.MakeBin
	if bin == "" {
		bin = "make"
	}
	output, err := exec.CommandContext(ctx, bin, args...).CombinedOutput()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("ports tree search failed").
			WithCause(shared.CommandError(output, err))
	}
	log.Debug().
		Str("key", string(filter.Key)).
		Int("bytes", len(output)).
		Msg("ports tree search completed")
	return string(output), nil
}

func (a MakeSearchAdapter) searchArgs(filter types.SearchFilter, fields []types.Field) ([]string, error) {
	if strings.TrimSpace(a.PortsDir) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("ports directory is empty")
	}
	if _, err := os.Stat(a.PortsDir); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("ports directory not found").
			WithCause(err)
	}
	if _, ok := searchKeys[filter.Key]; !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported search key: %s", filter.Key))
	}
	if strings.TrimSpace(filter.Value) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("search value is empty")
	}
	args := []string{
		"-C", a.PortsDir,
		"search",
		fmt.Sprintf("%s=%s", filter.Key, filter.Value),
	}
	if len(fields) > 0 {
		display := make([]string, 0, len(fields))
		for _, field := range fields {
			display = append(display, string(field))
		}
		args = append(args, fmt.Sprintf("display=%s", strings.Join(display, ",")))
	}
	return args, nil
}

var _ ports.PortsTreePort = MakeSearchAdapter{}
