package holidays

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry maps jurisdiction identifiers to providers. Providers must be
// registered parent first, which keeps every chain finite and acyclic.
type Registry struct {
	mu     sync.RWMutex
	byCode map[string]*Provider
	byPath map[string]*Provider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byCode: make(map[string]*Provider),
		byPath: make(map[string]*Provider),
	}
}

// Register adds p. Its parent must already be registered.
func (r *Registry) Register(p *Provider) error {
	if p == nil {
		return fmt.Errorf("%w: nil provider", ErrInvalidRule)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := p.chain(); err != nil {
		return err
	}
	if _, err := p.Location(); err != nil {
		return fmt.Errorf("%s: %w", p.Code, err)
	}

	code := strings.ToUpper(p.Code)
	path := strings.ToLower(p.Path())

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCode[code]; exists {
		return fmt.Errorf("jurisdiction %s already registered", p.Code)
	}
	if _, exists := r.byPath[path]; exists {
		return fmt.Errorf("jurisdiction %s already registered", p.Path())
	}
	if p.Parent != nil {
		if r.byCode[strings.ToUpper(p.Parent.Code)] != p.Parent {
			return fmt.Errorf("%w: parent %s of %s is not registered", ErrUnknownJurisdiction, p.Parent.Code, p.Code)
		}
	}

	r.byCode[code] = p
	r.byPath[path] = p
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(providers ...*Provider) {
	for _, p := range providers {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
}

// Lookup finds a provider by code ("DE-TH") or composite name
// ("Germany/Thuringia"), ignoring case.
func (r *Registry) Lookup(id string) (*Provider, error) {
	id = strings.TrimSpace(id)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.byCode[strings.ToUpper(id)]; ok {
		return p, nil
	}
	if p, ok := r.byPath[strings.ToLower(id)]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownJurisdiction, id)
}

// List returns every provider ordered by code.
func (r *Registry) List() []*Provider {
	r.mu.RLock()
	providers := make([]*Provider, 0, len(r.byCode))
	for _, p := range r.byCode {
		providers = append(providers, p)
	}
	r.mu.RUnlock()

	slices.SortFunc(providers, func(a, b *Provider) int {
		return strings.Compare(a.Code, b.Code)
	})
	return providers
}

// Codes returns every registered code in order.
func (r *Registry) Codes() []string {
	providers := r.List()
	codes := make([]string, len(providers))
	for i, p := range providers {
		codes[i] = p.Code
	}
	return codes
}

// Subdivisions returns the direct children of the jurisdiction id.
func (r *Registry) Subdivisions(id string) ([]*Provider, error) {
	parent, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	var children []*Provider
	for _, p := range r.List() {
		if p.Parent == parent {
			children = append(children, p)
		}
	}
	return children, nil
}
