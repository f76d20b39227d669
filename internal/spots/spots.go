// Package spots holds the fixed registry of surf spots and their external
// forecast provider IDs.
package spots

import "strings"

// Spot is a named surf location with its opaque forecast provider ID.
type Spot struct {
	Name string
	ID   string
}

// Registry is an immutable mapping from spot display names to provider IDs.
// It is built once at startup and injected into the handlers.
type Registry struct {
	spots []Spot
	byKey map[string]Spot
}

// Default returns the registry of the sixteen Gold Coast spots.
func Default() *Registry {
	return New([]Spot{
		{Name: "The Spit", ID: "5d81295f9f26b100014e2eee"},
		{Name: "Main Beach", ID: "584204204e65fad6a77092ce"},
		{Name: "Surfers Paradise", ID: "584204204e65fad6a77092d0"},
		{Name: "Broadbeach", ID: "584204204e65fad6a77092d3"},
		{Name: "Mermaid Beach", ID: "584204204e65fad6a77092d5"},
		{Name: "Miami", ID: "5d7c127712781b00019f8799"},
		{Name: "Burleigh Heads", ID: "5842041f4e65fad6a7708be8"},
		{Name: "Palm Beach", ID: "584204204e65fad6a77092d6"},
		{Name: "Currumbin Alley", ID: "5842041f4e65fad6a7708c2e"},
		{Name: "Tugun", ID: "584204204e65fad6a77092da"},
		{Name: "Bilinga", ID: "640b8f57606c451c6df13338"},
		{Name: "Kirra", ID: "5842041f4e65fad6a7708be9"},
		{Name: "Greenmount", ID: "5aea4194cd9646001ab81b0f"},
		{Name: "Rainbow Bay", ID: "584204204e65fad6a77092db"},
		{Name: "Snapper Rocks", ID: "5842041f4e65fad6a7708be5"},
		{Name: "Duranbah", ID: "5842041f4e65fad6a7708c11"},
	})
}

// New builds a registry from the given spots, preserving their order.
func New(entries []Spot) *Registry {
	byKey := make(map[string]Spot, len(entries))
	for _, s := range entries {
		byKey[s.Name] = s
	}
	return &Registry{spots: entries, byKey: byKey}
}

// All returns every spot in registry order.
func (r *Registry) All() []Spot {
	out := make([]Spot, len(r.spots))
	copy(out, r.spots)
	return out
}

// Resolve looks up a spot by its URL slug. Slugs use underscores for spaces
// and arbitrary case: "surfers_paradise" resolves to "Surfers Paradise".
func (r *Registry) Resolve(slug string) (Spot, bool) {
	s, ok := r.byKey[displayName(slug)]
	return s, ok
}

// Slug converts a display name to its URL slug.
func Slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

func displayName(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
