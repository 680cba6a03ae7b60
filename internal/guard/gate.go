package guard

import (
	"sort"
	"strings"

	"github.com/Guffawaffle/majel/internal/domain"
)

// Sentinel markers wrapping an injected context block, so any echo of it
// in the model's reply is trivially strippable.
const (
	contextBlockStart = "--- BEGIN FLEET CONTEXT ---"
	contextBlockEnd   = "--- END FLEET CONTEXT ---"
)

// GateContext materializes a contract against the live context source.
// Each name in the contract's lookup list is resolved through the source;
// unresolved names are silently skipped — the validator catches
// ungrounded claims after the fact, the gate does not guarantee
// completeness. The contract's manifest is rewritten to list only what
// actually resolved: the manifest describes the data the model receives,
// not the data the classifier wished for. When nothing was gathered the
// block is nil, never an empty wrapper.
func GateContext(contract *domain.TaskContract, src ContextSource) *domain.GatedContext {
	gc := &domain.GatedContext{}
	resolved := make(map[string]bool, len(contract.RequiredTiers.Lookup))

	var blocks []string
	if src != nil {
		for _, name := range contract.RequiredTiers.Lookup {
			entry := src.Lookup(name)
			if entry == nil {
				continue
			}
			resolved[name] = true
			blocks = append(blocks, formatEntry(*entry))
			gc.InjectedKeys = append(gc.InjectedKeys, "reference:"+entry.Name)
			gc.Entries = append(gc.Entries, *entry)
		}
	}

	contract.ContextManifest = reconcileManifest(contract.ContextManifest, resolved)

	if len(blocks) == 0 {
		return gc
	}

	var b strings.Builder
	b.WriteString(contextBlockStart)
	b.WriteString("\nContext manifest: ")
	b.WriteString(contract.ContextManifest)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(blocks, "\n"))
	b.WriteString(contextBlockEnd)

	block := b.String()
	gc.Block = &block
	return gc
}

// reconcileManifest drops lookup entries for names the source could not
// resolve. Tier labels and the general-knowledge marker pass through
// untouched.
func reconcileManifest(manifest string, resolved map[string]bool) string {
	parts := strings.Split(manifest, "; ")
	kept := parts[:0]
	for _, p := range parts {
		if name, ok := strings.CutPrefix(p, "reference: "); ok && !resolved[name] {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "; ")
}

// Augment prepends the gated context block to the message. A nil block
// means the message goes to the model unmodified. The block is never
// truncated here; a length cap belongs in the context source.
func Augment(message string, gc *domain.GatedContext) string {
	if gc == nil || gc.Block == nil {
		return message
	}
	return *gc.Block + "\n\n" + message
}

// formatEntry renders one reference entry as a labeled block with its
// provenance and descriptive fields. Detail keys are sorted so the block
// is byte-stable for identical inputs.
func formatEntry(e domain.ReferenceEntry) string {
	var b strings.Builder
	b.WriteString("[Reference: ")
	b.WriteString(e.Name)
	b.WriteString("]\n")
	b.WriteString("source: ")
	b.WriteString(e.Source)
	b.WriteString("\nimported: ")
	b.WriteString(e.ImportedAt.UTC().Format("2006-01-02"))
	b.WriteString("\n")

	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Details[k])
		b.WriteString("\n")
	}
	return b.String()
}
