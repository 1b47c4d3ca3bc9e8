// Package scenario loads, validates, generates, and runs simulation scenarios:
// a block/process set for the allocation engine and a reference string for
// the paging engine, described in YAML.
package scenario

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/memsim/memsim/sim"
	"github.com/memsim/memsim/sim/allocation"
	"github.com/memsim/memsim/sim/paging"
)

// MaxSuggestedFrames is the upper end of the frame range offered to users.
// Larger values are accepted with a warning.
const MaxSuggestedFrames = 10

// Scenario is the top-level scenario file.
// Loaded from YAML via LoadScenario(path).
type Scenario struct {
	Version    string          `yaml:"version"`
	Name       string          `yaml:"name,omitempty"`
	Seed       int64           `yaml:"seed,omitempty"` // recorded by the generator; informational
	Allocation *AllocationSpec `yaml:"allocation,omitempty"`
	Paging     *PagingSpec     `yaml:"paging,omitempty"`
}

// AllocationSpec is the allocation engine input.
type AllocationSpec struct {
	Blocks     []int    `yaml:"blocks,flow"`
	Processes  []int    `yaml:"processes,flow"`
	Strategies []string `yaml:"strategies,omitempty,flow"` // empty = all
}

// PagingSpec is the paging engine input.
type PagingSpec struct {
	Pages  []int `yaml:"pages,flow"`
	Frames int   `yaml:"frames"`
}

// validVersions lists accepted scenario file versions.
var validVersions = map[string]bool{
	"":  true,
	"1": true,
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scenario")
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	return s, nil
}

// ParseScenario parses YAML scenario data with strict field checking.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "parsing scenario")
	}
	if s.Version == "" {
		s.Version = "1"
	}
	return &s, nil
}

// Validate checks that the scenario can be handed to the engines.
// Every failure is marked sim.ErrInvalidInput.
func (s *Scenario) Validate() error {
	if !validVersions[s.Version] {
		return sim.InvalidInputf("unknown scenario version %q; valid: 1", s.Version)
	}
	if s.Allocation == nil && s.Paging == nil {
		return sim.InvalidInputf("scenario needs an allocation or a paging section")
	}
	if s.Allocation != nil {
		if err := s.Allocation.Validate(); err != nil {
			return errors.Wrap(err, "allocation")
		}
	}
	if s.Paging != nil {
		if err := s.Paging.Validate(); err != nil {
			return errors.Wrap(err, "paging")
		}
	}
	return nil
}

// Validate checks block and process sizes and the strategy names.
func (a *AllocationSpec) Validate() error {
	if err := allocation.ValidateInput(a.Blocks, a.Processes); err != nil {
		return err
	}
	_, err := allocation.ParseStrategies(a.Strategies)
	return err
}

// Validate checks the reference string and frame count. Frame counts above
// MaxSuggestedFrames are legal but logged.
func (p *PagingSpec) Validate() error {
	if err := paging.ValidateInput(p.Pages, p.Frames); err != nil {
		return err
	}
	if p.Frames > MaxSuggestedFrames {
		logrus.Warnf("frames=%d exceeds the suggested maximum of %d", p.Frames, MaxSuggestedFrames)
	}
	return nil
}

// Marshal renders the scenario as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling scenario")
	}
	return data, nil
}
