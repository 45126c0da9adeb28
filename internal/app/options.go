package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Options reports the option files recorded for one package and their
// merged option map.  A package with nothing recorded yields an empty
// result.
func (s Service) Options(ctx context.Context, req OptionsRequest) (OptionsResult, error) {
	name := strings.TrimSpace(req.Name)
	origin := strings.TrimSpace(req.Origin)
	if name == "" && origin == "" {
		return OptionsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name or origin is required")
	}
	files, err := s.OptionsSource.Discover(name, origin)
	if err != nil {
		return OptionsResult{}, err
	}
	if len(files) == 0 {
		return OptionsResult{}, nil
	}
	options, err := s.OptionsSource.Load(files)
	if err != nil {
		return OptionsResult{}, err
	}
	return OptionsResult{Files: files, Options: options}, nil
}
