package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"adchain/internal/core/domain"
)

// PreloadPlan lists the ad requests that are kept warm in the cache.
type PreloadPlan struct {
	Requests []domain.AdRequest `yaml:"requests"`
}

// LoadPreloadPlan reads a YAML preload plan and expands environment
// variables in it. Entries with an empty unit or a non-positive count are
// rejected.
//
//	requests:
//	  - unit_id: feed
//	    count: 10
func LoadPreloadPlan(path string) ([]domain.AdRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preload plan: %w", err)
	}

	var plan PreloadPlan
	if err = yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &plan); err != nil {
		return nil, fmt.Errorf("parse preload plan: %w", err)
	}
	for i, r := range plan.Requests {
		if r.UnitID == "" || r.Count <= 0 {
			return nil, fmt.Errorf("preload plan entry %d: unit_id and positive count required", i)
		}
	}
	return plan.Requests, nil
}
