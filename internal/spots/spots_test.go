package spots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	registry := Default()

	tests := []struct {
		name     string
		slug     string
		wantName string
		wantID   string
		wantOK   bool
	}{
		{
			name:     "known slug",
			slug:     "surfers_paradise",
			wantName: "Surfers Paradise",
			wantID:   "584204204e65fad6a77092d0",
			wantOK:   true,
		},
		{
			name:     "mixed case slug",
			slug:     "SNAPPER_rocks",
			wantName: "Snapper Rocks",
			wantID:   "5842041f4e65fad6a7708be5",
			wantOK:   true,
		},
		{
			name:     "single word",
			slug:     "miami",
			wantName: "Miami",
			wantID:   "5d7c127712781b00019f8799",
			wantOK:   true,
		},
		{
			name:   "unknown slug",
			slug:   "atlantis",
			wantOK: false,
		},
		{
			name:   "empty slug",
			slug:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spot, ok := registry.Resolve(tt.slug)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantName, spot.Name)
				assert.Equal(t, tt.wantID, spot.ID)
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry := Default()

	all := registry.All()
	require.Len(t, all, 16)

	// Listing order is fixed, The Spit comes first and Duranbah last.
	assert.Equal(t, "The Spit", all[0].Name)
	assert.Equal(t, "Duranbah", all[15].Name)

	// Every entry resolves through its own slug.
	for _, s := range all {
		resolved, ok := registry.Resolve(Slug(s.Name))
		require.True(t, ok, "spot %q did not resolve", s.Name)
		assert.Equal(t, s.ID, resolved.ID)
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "surfers_paradise", Slug("Surfers Paradise"))
	assert.Equal(t, "miami", Slug("Miami"))
	assert.Equal(t, "currumbin_alley", Slug("Currumbin Alley"))
}

func TestAllReturnsCopy(t *testing.T) {
	registry := Default()

	all := registry.All()
	all[0].Name = "mutated"

	assert.Equal(t, "The Spit", registry.All()[0].Name)
}
