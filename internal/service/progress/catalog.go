package progress

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/prepstack/interview-backend/internal/domain"
)

// defaultRole is the catalogue entry used when a learner's role has no
// catalogue of its own. The roadmap is advisory, not gating, so an
// unknown role falls back here instead of erroring.
const defaultRole = "software engineer"

// Catalogue maps normalized role names to their ordered phase lists.
type Catalogue struct {
	roles map[string][]domain.Phase
}

// PhasesFor returns the phase list for a role. The second return value is
// false when the role was unknown and the default catalogue was used.
func (c *Catalogue) PhasesFor(role string) ([]domain.Phase, bool) {
	if phases, ok := c.roles[normalizeRole(role)]; ok {
		return phases, true
	}
	return c.roles[defaultRole], false
}

// Roles returns the catalogue's role names, sorted.
func (c *Catalogue) Roles() []string {
	out := make([]string, 0, len(c.roles))
	for r := range c.roles {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

func normalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// cataloguePhase is the YAML shape of one phase definition.
type cataloguePhase struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Topics        []string `yaml:"topics"`
	EstimatedDays int      `yaml:"estimated_days"`
}

type catalogueFile struct {
	Roles map[string][]cataloguePhase `yaml:"roles"`
}

// LoadCatalogue reads a role→phases catalogue from a YAML file. The file
// must define the default role so the unknown-role fallback always has
// somewhere to land. Ordinals follow document order.
func LoadCatalogue(path string) (*Catalogue, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalogue: read %s: %w", path, err)
	}

	var file catalogueFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("catalogue: parse %s: %w", path, err)
	}
	if len(file.Roles) == 0 {
		return nil, fmt.Errorf("catalogue: %s defines no roles", path)
	}

	roles := make(map[string][]domain.Phase, len(file.Roles))
	for role, defs := range file.Roles {
		phases := make([]domain.Phase, 0, len(defs))
		for i, d := range defs {
			if d.ID == "" || d.Name == "" {
				return nil, fmt.Errorf("catalogue: role %q phase %d: id and name are required", role, i)
			}
			phases = append(phases, domain.Phase{
				ID:            d.ID,
				Name:          d.Name,
				Ordinal:       i,
				Topics:        d.Topics,
				EstimatedDays: d.EstimatedDays,
			})
		}
		roles[normalizeRole(role)] = phases
	}

	if _, ok := roles[defaultRole]; !ok {
		return nil, fmt.Errorf("catalogue: missing default role %q", defaultRole)
	}

	return &Catalogue{roles: roles}, nil
}

// DefaultCatalogue returns the compiled-in catalogue used when no
// catalogue file is configured or a file omits a role.
func DefaultCatalogue() *Catalogue {
	generic := []domain.Phase{
		{ID: "foundations", Name: "Foundations", Ordinal: 0, EstimatedDays: 14,
			Topics: []string{"data structures", "algorithms", "complexity"}},
		{ID: "core-engineering", Name: "Core Engineering", Ordinal: 1, EstimatedDays: 21,
			Topics: []string{"oop", "design patterns", "testing", "debugging"}},
		{ID: "systems", Name: "Systems & Architecture", Ordinal: 2, EstimatedDays: 21,
			Topics: []string{"system design", "databases", "networking", "caching"}},
		{ID: "behavioral", Name: "Behavioral & Leadership", Ordinal: 3, EstimatedDays: 7,
			Topics: []string{"behavioral", "leadership", "communication"}},
	}

	backend := []domain.Phase{
		{ID: "foundations", Name: "Foundations", Ordinal: 0, EstimatedDays: 14,
			Topics: []string{"data structures", "algorithms", "complexity"}},
		{ID: "backend-core", Name: "Backend Core", Ordinal: 1, EstimatedDays: 21,
			Topics: []string{"api", "rest", "databases", "sql", "concurrency"}},
		{ID: "distributed", Name: "Distributed Systems", Ordinal: 2, EstimatedDays: 28,
			Topics: []string{"system design", "scaling", "caching", "messaging", "microservices"}},
		{ID: "behavioral", Name: "Behavioral & Leadership", Ordinal: 3, EstimatedDays: 7,
			Topics: []string{"behavioral", "leadership", "communication"}},
	}

	frontend := []domain.Phase{
		{ID: "foundations", Name: "Foundations", Ordinal: 0, EstimatedDays: 14,
			Topics: []string{"javascript", "html", "css", "data structures"}},
		{ID: "frameworks", Name: "Frameworks & State", Ordinal: 1, EstimatedDays: 21,
			Topics: []string{"react", "state management", "components", "hooks"}},
		{ID: "frontend-systems", Name: "Frontend at Scale", Ordinal: 2, EstimatedDays: 21,
			Topics: []string{"performance", "accessibility", "system design", "bundling"}},
		{ID: "behavioral", Name: "Behavioral & Leadership", Ordinal: 3, EstimatedDays: 7,
			Topics: []string{"behavioral", "leadership", "communication"}},
	}

	return &Catalogue{roles: map[string][]domain.Phase{
		defaultRole:         generic,
		"backend engineer":  backend,
		"frontend engineer": frontend,
	}}
}
