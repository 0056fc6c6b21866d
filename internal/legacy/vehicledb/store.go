// Package vehicledb is the legacy vehicle register: a read-only table of
// vehicles keyed by registration number, served over HTTP.
package vehicledb

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/sentinel"
	strs "github.com/akerstrom/insurance-platform-showcase/pkg/platform/strings"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/validator"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Vehicles []insurance.Vehicle `yaml:"vehicles"`
}

// Store is an immutable, case-insensitive registration index.
type Store struct {
	byRegnr map[string]insurance.Vehicle
}

// Load reads the seed at path, or the embedded seed when path is empty.
func Load(path string) (*Store, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read vehicle seed: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse builds a Store from YAML seed content. Every record is validated and
// registrations must be unique ignoring case.
func Parse(data []byte) (*Store, error) {
	var seed seedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode vehicle seed: %w", err)
	}

	v := validator.New()
	byRegnr := make(map[string]insurance.Vehicle, len(seed.Vehicles))
	for i, vehicle := range seed.Vehicles {
		if err := v.Struct(vehicle); err != nil {
			return nil, fmt.Errorf("vehicle seed entry %d: %w", i, err)
		}
		key := strs.NormalizeKey(vehicle.Regnr)
		if _, dup := byRegnr[key]; dup {
			return nil, fmt.Errorf("vehicle seed entry %d: duplicate registration %q", i, vehicle.Regnr)
		}
		byRegnr[key] = vehicle
	}
	return &Store{byRegnr: byRegnr}, nil
}

// FindByRegnr returns the vehicle for regnr ignoring case, or
// sentinel.ErrNotFound.
func (s *Store) FindByRegnr(_ context.Context, regnr string) (*insurance.Vehicle, error) {
	vehicle, ok := s.byRegnr[strs.NormalizeKey(regnr)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &vehicle, nil
}

// Len reports how many vehicles are loaded.
func (s *Store) Len() int {
	return len(s.byRegnr)
}
