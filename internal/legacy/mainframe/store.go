package mainframe

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/sentinel"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Policies []seedPolicy `yaml:"policies"`
}

type seedPolicy struct {
	ID      string `yaml:"id"`
	Pid     string `yaml:"pid"`
	Type    string `yaml:"type"`
	Status  string `yaml:"status"`
	Premium string `yaml:"premium"`
	Regnr   string `yaml:"regnr"`
}

func (s seedPolicy) toPolicy() (Policy, error) {
	id, err := uuid.Parse(s.ID)
	if err != nil {
		return Policy{}, fmt.Errorf("id: %w", err)
	}
	if strings.TrimSpace(s.Pid) == "" {
		return Policy{}, fmt.Errorf("pid is required")
	}
	typ, err := ParsePolicyType(s.Type)
	if err != nil {
		return Policy{}, err
	}
	premium, err := insurance.NewMoney(s.Premium)
	if err != nil {
		return Policy{}, fmt.Errorf("premium: %w", err)
	}
	if premium.IsNegative() {
		return Policy{}, fmt.Errorf("premium must not be negative")
	}
	return Policy{
		ID:      id,
		Pid:     s.Pid,
		Type:    typ,
		Status:  s.Status,
		Premium: premium,
		Regnr:   s.Regnr,
	}, nil
}

// Store is an immutable policy ledger in seed order.
type Store struct {
	policies []Policy
}

// Load reads the seed at path, or the embedded seed when path is empty.
func Load(path string) (*Store, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read policy seed: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse builds a Store from YAML seed content.
func Parse(data []byte) (*Store, error) {
	var seed seedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode policy seed: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(seed.Policies))
	policies := make([]Policy, 0, len(seed.Policies))
	for i, sp := range seed.Policies {
		p, err := sp.toPolicy()
		if err != nil {
			return nil, fmt.Errorf("policy seed entry %d: %w", i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("policy seed entry %d: duplicate id %s", i, p.ID)
		}
		seen[p.ID] = struct{}{}
		policies = append(policies, p)
	}
	return &Store{policies: policies}, nil
}

// ListByPid returns the policies held by pid in ledger order, or
// sentinel.ErrNotFound when there are none. The pid must match exactly.
func (s *Store) ListByPid(_ context.Context, pid string) ([]Policy, error) {
	var out []Policy
	for _, p := range s.policies {
		if p.Pid == pid {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, sentinel.ErrNotFound
	}
	return out, nil
}

// Len reports how many policies the ledger holds.
func (s *Store) Len() int {
	return len(s.policies)
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
