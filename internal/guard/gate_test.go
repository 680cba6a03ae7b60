package guard

import (
	"strings"
	"testing"
	"time"

	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource is a canned ContextSource for gate tests.
type stubSource struct {
	tiers   TierSnapshot
	entries map[string]*domain.ReferenceEntry
}

func (s *stubSource) Tiers() TierSnapshot { return s.tiers }

func (s *stubSource) Lookup(name string) *domain.ReferenceEntry {
	return s.entries[name]
}

func khanEntry() *domain.ReferenceEntry {
	return &domain.ReferenceEntry{
		ID:   "off-1",
		Name: "Khan",
		Details: map[string]string{
			"faction": "Augment",
			"rarity":  "epic",
		},
		Source:     "sheet:fleet-roster",
		ImportedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGateContext_EmptyLookupAllTiersFalse(t *testing.T) {
	c := Classify("hello", TierSnapshot{}, nil)
	gc := GateContext(c, &stubSource{})

	assert.Nil(t, gc.Block)
	assert.Empty(t, gc.InjectedKeys)
	assert.Empty(t, gc.Entries)
}

func TestGateContext_ResolvedLookupBuildsBlock(t *testing.T) {
	src := &stubSource{
		tiers:   TierSnapshot{Roster: true},
		entries: map[string]*domain.ReferenceEntry{"Khan": khanEntry()},
	}
	c := Classify("Tell me about Khan", src.Tiers(), []string{"Khan"})
	gc := GateContext(c, src)

	require.NotNil(t, gc.Block)
	block := *gc.Block
	assert.True(t, strings.HasPrefix(block, contextBlockStart))
	assert.True(t, strings.HasSuffix(block, contextBlockEnd))
	assert.Contains(t, block, "Context manifest: "+c.ContextManifest)
	assert.Contains(t, block, "[Reference: Khan]")
	assert.Contains(t, block, "source: sheet:fleet-roster")
	assert.Contains(t, block, "imported: 2026-08-01")
	assert.Contains(t, block, "faction: Augment")

	assert.Equal(t, []string{"reference:Khan"}, gc.InjectedKeys)
	require.Len(t, gc.Entries, 1)
	assert.Equal(t, "Khan", gc.Entries[0].Name)
}

func TestGateContext_UnresolvedNameSilentlySkipped(t *testing.T) {
	src := &stubSource{
		entries: map[string]*domain.ReferenceEntry{"Khan": khanEntry()},
	}
	c := Classify("Compare Khan and Gorkon", src.Tiers(), []string{"Khan", "Gorkon"})
	require.ElementsMatch(t, []string{"Khan", "Gorkon"}, c.RequiredTiers.Lookup)

	gc := GateContext(c, src)

	require.NotNil(t, gc.Block)
	assert.Equal(t, []string{"reference:Khan"}, gc.InjectedKeys)
	assert.Len(t, gc.Entries, 1)
	assert.NotContains(t, *gc.Block, "Gorkon")
}

func TestGateContext_ManifestListsOnlyResolvedReferences(t *testing.T) {
	src := &stubSource{
		tiers:   TierSnapshot{Roster: true},
		entries: map[string]*domain.ReferenceEntry{"Khan": khanEntry()},
	}
	c := Classify("Compare Khan and Gorkon", src.Tiers(), []string{"Khan", "Gorkon"})
	gc := GateContext(c, src)

	// The contract manifest is reconciled to what was actually injected,
	// and the block carries the reconciled line.
	assert.Contains(t, c.ContextManifest, "reference: Khan")
	assert.NotContains(t, c.ContextManifest, "Gorkon")
	require.NotNil(t, gc.Block)
	assert.Contains(t, *gc.Block, "Context manifest: "+c.ContextManifest)
}

func TestGateContext_NoResolutionsMeansNilBlock(t *testing.T) {
	// Names required but none resolve: no empty wrapper.
	src := &stubSource{}
	c := Classify("Tell me about Khan", src.Tiers(), []string{"Khan"})
	gc := GateContext(c, src)

	assert.Nil(t, gc.Block)
	assert.Empty(t, gc.InjectedKeys)
}

func TestGateContext_NilSource(t *testing.T) {
	c := Classify("Tell me about Khan", TierSnapshot{}, []string{"Khan"})
	gc := GateContext(c, nil)
	assert.Nil(t, gc.Block)
	// No source means nothing resolved; the manifest says so.
	assert.NotContains(t, c.ContextManifest, "reference:")
}

func TestGateContext_BlockIsDeterministic(t *testing.T) {
	src := &stubSource{
		entries: map[string]*domain.ReferenceEntry{"Khan": khanEntry()},
	}
	c := Classify("Tell me about Khan", src.Tiers(), []string{"Khan"})

	a := GateContext(c, src)
	b := GateContext(c, src)
	require.NotNil(t, a.Block)
	require.NotNil(t, b.Block)
	assert.Equal(t, *a.Block, *b.Block)
}

func TestAugment_NilContextReturnsMessageUnchanged(t *testing.T) {
	msg := "What's the best crew for mining?"
	assert.Equal(t, msg, Augment(msg, nil))
	assert.Equal(t, msg, Augment(msg, &domain.GatedContext{}))
}

func TestAugment_PrependsBlockVerbatim(t *testing.T) {
	block := contextBlockStart + "\nstuff\n" + contextBlockEnd
	gc := &domain.GatedContext{Block: &block}

	out := Augment("original question", gc)
	assert.Equal(t, block+"\n\noriginal question", out)
}
