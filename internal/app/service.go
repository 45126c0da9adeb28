package app

import (
	"time"

	"portquery/internal/adapters"
	"portquery/internal/config"
	"portquery/internal/policies"
	"portquery/internal/ports"
)

type Service struct {
	PortsTree       ports.PortsTreePort
	InstalledSource ports.InstalledPort
	OptionsSource   ports.OptionsPort
	Output          ports.RecordOutputPort
	Policy          policies.FieldPolicy
	IncludeMoved    bool
	Clock           func() time.Time
}

func NewService(cfg config.Config) Service {
	search := adapters.NewMakeSearchAdapter(cfg.PortsDir)
	if cfg.MakeBin != "" {
		search.MakeBin = cfg.MakeBin
	}
	var installed ports.InstalledPort
	if cfg.InstalledBackend == config.BackendSQLite {
		installed = adapters.NewPkgSQLiteAdapter(cfg.PkgDB)
	} else {
		query := adapters.NewPkgQueryAdapter()
		if cfg.PkgBin != "" {
			query.PkgBin = cfg.PkgBin
		}
		installed = query
	}
	return Service{
		PortsTree:       search,
		InstalledSource: installed,
		OptionsSource:   adapters.NewOptionsFileAdapter(cfg.PortDBDir),
		Output:          adapters.NewRecordFileAdapter(),
		Policy:          policies.NewFieldPolicy(policies.FieldPolicyMode(cfg.FieldPolicy)),
		IncludeMoved:    cfg.IncludeMoved,
		Clock:           time.Now,
	}
}
