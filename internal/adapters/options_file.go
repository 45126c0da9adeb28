package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"portquery/internal/ports"
	"portquery/internal/shared"
)

// optionsBasenames are the files consulted per option directory, in
// merge order.
var optionsBasenames = []string{"options", "options.local"}

// OptionsFileAdapter reads saved port build options from the port
// options database directory.
type OptionsFileAdapter struct {
	DBDir string
}

func NewOptionsFileAdapter(dbDir string) OptionsFileAdapter {
	return OptionsFileAdapter{DBDir: dbDir}
}

// Discover returns the option files recorded for a package.  The
// legacy name-keyed directory is consulted first, then the
// origin-keyed one (category_name), so current files win when the
// results are merged in order.
func (a OptionsFileAdapter) Discover(name string, origin string) ([]string, error) {
	if strings.TrimSpace(a.DBDir) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("port options directory is empty")
	}
	var dirs []string
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		dirs = append(dirs, trimmed)
	}
	if dir := shared.OriginDir(origin); dir != "" {
		dirs = append(dirs, dir)
	}
	var paths []string
	seen := map[string]struct{}{}
	for _, dir := range dirs {
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		for _, basename := range optionsBasenames {
			path := filepath.Join(a.DBDir, dir, basename)
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// Load merges option files in order, later files overriding earlier
// ones per option.
func (a OptionsFileAdapter) Load(paths []string) (map[string]bool, error) {
	options := map[string]bool{}
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("failed to read options file").
				WithCause(err)
		}
		mergeOptionsContent(string(content), options)
	}
	log.Debug().Int("options", len(options)).Int("files", len(paths)).Msg("port options loaded")
	return options, nil
}

// mergeOptionsContent folds one options file into the option map.
// Current files record OPTIONS_FILE_SET+=X / OPTIONS_FILE_UNSET+=X;
// files predating optionsng recorded WITH_X=true / WITHOUT_X=true.
// Lines matching neither form are dropped.
func mergeOptionsContent(content string, options map[string]bool) {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSuffix(strings.TrimSpace(parts[0]), "+")
		value := strings.TrimSpace(parts[1])
		switch key {
		case "OPTIONS_FILE_SET":
			if value != "" {
				options[value] = true
			}
		case "OPTIONS_FILE_UNSET":
			if value != "" {
				options[value] = false
			}
		default:
			if strings.HasPrefix(key, "WITH_") {
				if name := strings.TrimPrefix(key, "WITH_"); name != "" {
					options[name] = true
				}
				continue
			}
			if strings.HasPrefix(key, "WITHOUT_") {
				if name := strings.TrimPrefix(key, "WITHOUT_"); name != "" {
					options[name] = false
				}
			}
		}
	}
}

var _ ports.OptionsPort = OptionsFileAdapter{}
