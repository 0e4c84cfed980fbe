package entitlement

import (
	"context"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlSource loads a plan table from a YAML document of the shape:
//
//	free:
//	  members: 2
//	  accounts: 3
//	  organizations: 1
//	  custom_roles: 0
//	  transaction_history_months: 3
//	  analytics_history_days: 30
//	pro:
//	  members: -1
//	  ai_advisor: true
//	  ...
//
// A value of -1 means unlimited.
type yamlSource struct {
	raw []byte
}

// NewYAMLSource returns a Source that parses the given YAML document.
func NewYAMLSource(doc []byte) Source {
	return &yamlSource{raw: doc}
}

// NewYAMLFileSource returns a Source that reads and parses a YAML file on
// each Load, so a restart (or reload) can pick up plan changes.
func NewYAMLFileSource(path string) Source {
	return &yamlFileSource{path: path}
}

func (s *yamlSource) Load(ctx context.Context) (Table, error) {
	return parsePlanDocument(s.raw)
}

type yamlFileSource struct {
	path string
}

func (s *yamlFileSource) Load(ctx context.Context) (Table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}
	return parsePlanDocument(raw)
}

func parsePlanDocument(raw []byte) (Table, error) {
	var table Table
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, errors.Join(ErrInvalidPlanDocument, err)
	}
	if len(table) == 0 {
		return nil, ErrInvalidPlanDocument
	}
	return table, nil
}
