package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"portquery/internal/core"
	"portquery/internal/shared"
	"portquery/internal/types"
)

// Updates joins the installed-package set against the ports tree and
// reports a status per package, pkg_version style: "<" behind the tree,
// "=" current, ">" ahead, "?" when either side is unknown.
func (s Service) Updates(ctx context.Context, req UpdatesRequest) (UpdatesResult, error) {
	installed, err := s.installedForUpdates(ctx, req)
	if err != nil {
		return UpdatesResult{}, err
	}
	catalog := core.CatalogFor(ctx, types.RecordKindPort)
	resolver := core.NewFieldResolver(catalog, s.Policy)
	queryFields := resolver.QueryFields(ctx, types.NewFieldSet(types.FieldName, types.FieldPath), types.FieldPath)

	var records []UpdateRecord
	for _, record := range installed {
		name, version, origin := updateSource(record)
		if name == "" || origin == "" {
			continue
		}
		available, err := s.availableVersion(ctx, origin, queryFields)
		if err != nil {
			return UpdatesResult{}, err
		}
		records = append(records, UpdateRecord{
			Name:      name,
			Origin:    origin,
			Installed: version,
			Available: available,
			Status:    core.UpdateStatus(version, available),
		})
	}
	log.Ctx(ctx).Debug().Int("packages", len(records)).Msg("update check completed")
	return UpdatesResult{Records: records}, nil
}

func (s Service) installedForUpdates(ctx context.Context, req UpdatesRequest) ([]types.Record, error) {
	if path := strings.TrimSpace(req.BaselinePath); path != "" {
		file, err := s.Output.ReadRecords(path)
		if err != nil {
			return nil, err
		}
		return file.Records, nil
	}
	catalog := core.CatalogFor(ctx, types.RecordKindPackage)
	resolver := core.NewFieldResolver(catalog, s.Policy)
	queryFields := resolver.QueryFields(ctx, types.NewFieldSet(types.FieldName, types.FieldVersion, types.FieldOrigin), "")
	return s.InstalledSource.Query(ctx, strings.TrimSpace(req.Pattern), queryFields)
}

// availableVersion searches the tree by origin and returns the version
// of the matching port, or empty when the origin is gone.
func (s Service) availableVersion(ctx context.Context, origin string, queryFields []types.Field) (string, error) {
	raw, err := s.PortsTree.Search(ctx, types.SearchFilter{Key: types.SearchKeyPath, Value: origin}, queryFields)
	if err != nil {
		return "", err
	}
	for _, record := range core.ParseSearchOutput(ctx, raw, core.ParseOptions{}) {
		if shared.OriginFromPath(record.Get(types.FieldPath)) != origin {
			continue
		}
		if _, version := core.ParsePkgName(record.Get(types.FieldName)); version != "" {
			return version, nil
		}
	}
	return "", nil
}

// updateSource pulls the comparison triple out of an installed record,
// falling back to derived fields when a baseline file carries port
// records instead of package rows.
func updateSource(record types.Record) (string, string, string) {
	name := record.Get(types.FieldName)
	version := record.Get(types.FieldVersion)
	if version == "" {
		if base, split := core.ParsePkgName(name); split != "" {
			name, version = base, split
		}
	}
	origin := record.Get(types.FieldOrigin)
	if origin == "" {
		origin = record.Get(types.FieldPortorigin)
	}
	if origin == "" {
		origin = shared.OriginFromPath(record.Get(types.FieldPath))
	}
	return name, version, origin
}
