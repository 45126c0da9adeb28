package app

import "portquery/internal/types"

type SearchRequest struct {
	Filter       types.SearchFilter
	Fields       []types.Field
	IncludeMoved bool
	OutputPath   string
}

type SearchResult struct {
	Records []types.Record
}

type InstalledRequest struct {
	Pattern    string
	Fields     []types.Field
	OutputPath string
}

type InstalledResult struct {
	Records []types.Record
}

type OptionsRequest struct {
	Name   string
	Origin string
}

type OptionsResult struct {
	Files   []string
	Options map[string]bool
}

type UpdatesRequest struct {
	Pattern      string
	BaselinePath string
}

type UpdateRecord struct {
	Name      string
	Origin    string
	Installed string
	Available string
	Status    string
}

type UpdatesResult struct {
	Records []UpdateRecord
}
