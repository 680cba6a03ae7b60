package guard

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fleetContract(t *testing.T) *domain.TaskContract {
	t.Helper()
	c := Classify("What crew should I use for my fleet?", TierSnapshot{Roster: true}, nil)
	require.Equal(t, domain.TaskFleetQuery, c.TaskType)
	return c
}

func referenceContract(t *testing.T) *domain.TaskContract {
	t.Helper()
	c := Classify("Tell me about Khan", TierSnapshot{Roster: true}, []string{"Khan"})
	require.Equal(t, domain.TaskReferenceLookup, c.TaskType)
	return c
}

func dockContract(t *testing.T) *domain.TaskContract {
	t.Helper()
	c := Classify("Set up dock 2 for PvP", TierSnapshot{Config: true, Roster: true, Briefing: true}, nil)
	require.Equal(t, domain.TaskDockPlanning, c.TaskType)
	return c
}

func generalContract(t *testing.T) *domain.TaskContract {
	t.Helper()
	c := Classify("What's the best crew for mining, generally?", TierSnapshot{Config: true}, nil)
	require.Equal(t, domain.TaskStrategyGeneral, c.TaskType)
	return c
}

func TestValidateReply_StrategyGeneralAlwaysPasses(t *testing.T) {
	c := generalContract(t)

	// Even replies stuffed with numeric, patch, and diagnostic-sounding
	// claims pass: the category carries no hard rules.
	replies := []string{
		"Kirk is level 40 and does 23% more damage.",
		"Patch 12.3 changed mining rates significantly.",
		"memory frames: 12",
	}
	for _, reply := range replies {
		res := ValidateReply(reply, c, nil)
		assert.True(t, res.Pass, "reply %q should pass", reply)
		assert.Empty(t, res.Violations)
	}
}

func TestValidateReply_DiagnosticClaimAlwaysFails(t *testing.T) {
	// Fabricated runtime-state claims fail every non-exempt category,
	// independent of the contract's rule list.
	contracts := []*domain.TaskContract{
		fleetContract(t), referenceContract(t), dockContract(t),
	}
	for _, c := range contracts {
		res := ValidateReply("My connection status is 3 and memory frames: 12.", c, nil)
		require.False(t, res.Pass, "task %s", c.TaskType)

		var found bool
		for _, v := range res.Violations {
			if v.Check == CheckDiagnosticClaim {
				found = true
				assert.NotEmpty(t, v.Snippet)
			}
		}
		assert.True(t, found, "expected diagnostic violation for %s", c.TaskType)
	}
}

func TestValidateReply_UncitedNumericClaimFails(t *testing.T) {
	res := ValidateReply("Kirk is level 40.", fleetContract(t), nil)

	require.False(t, res.Pass)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, CheckUncitedNumeric, res.Violations[0].Check)
	assert.Contains(t, res.Violations[0].Snippet, "level 40")
}

func TestValidateReply_AttributionRescuesNumericClaim(t *testing.T) {
	res := ValidateReply("Your roster shows Kirk at level 40.", fleetContract(t), nil)
	assert.True(t, res.Pass)
	assert.Empty(t, res.Violations)
}

func TestValidateReply_HedgeRescuesNumericClaim(t *testing.T) {
	// Idempotent rescue: the same failing reply passes once a hedge is
	// appended, all else unchanged.
	failing := "Kirk is level 40."
	res := ValidateReply(failing, fleetContract(t), nil)
	require.False(t, res.Pass)

	res = ValidateReply(failing+" This may be outdated.", fleetContract(t), nil)
	assert.True(t, res.Pass)
}

func TestValidateReply_NumericViolationQuotesAtMostThreeFragments(t *testing.T) {
	reply := "Kirk is level 40, Spock is level 38, Uhura is level 35, and Khan is level 44."
	res := ValidateReply(reply, fleetContract(t), nil)

	require.False(t, res.Pass)
	require.Len(t, res.Violations, 1)
	frags := strings.Split(res.Violations[0].Snippet, " | ")
	assert.LessOrEqual(t, len(frags), 3)
}

func TestValidateReply_PatchClaimNeedsHedge(t *testing.T) {
	res := ValidateReply("Patch 12.3 nerfed Khan's ability.", referenceContract(t), nil)
	require.False(t, res.Pass)

	var found bool
	for _, v := range res.Violations {
		if v.Check == CheckPatchClaim {
			found = true
		}
	}
	assert.True(t, found)

	res = ValidateReply("Patch 12.3 may have changed this, I'm not certain.", referenceContract(t), nil)
	for _, v := range res.Violations {
		assert.NotEqual(t, CheckPatchClaim, v.Check)
	}
}

func TestValidateReply_PatchCheckInactiveForDockPlanning(t *testing.T) {
	res := ValidateReply("The v2.1 loadout is standard.", dockContract(t), nil)
	for _, v := range res.Violations {
		assert.NotEqual(t, CheckPatchClaim, v.Check)
	}
}

func TestValidateReply_LongConfidentReplyNeedsSourceSignal(t *testing.T) {
	// Long, fact-dense, no disclosure of any source: the coarse backstop
	// triggers even though every sentence avoids the exact claim shapes
	// the narrower numeric check quotes.
	long := strings.Repeat("Khan dominates every armada composition in the current meta. ", 8) +
		"His synergy bonus reaches 44% with a full Augment bridge."
	require.Greater(t, len(long), activePolicy.longReplyThreshold)

	res := ValidateReply(long, referenceContract(t), nil)
	require.False(t, res.Pass)

	var found bool
	for _, v := range res.Violations {
		if v.Check == CheckSourceAttribution {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateReply_SourceSignalSatisfiesBackstop(t *testing.T) {
	long := strings.Repeat("Khan dominates every armada composition in the current meta. ", 8) +
		"Based on general knowledge, his synergy bonus reaches roughly 44% with a full Augment bridge."

	res := ValidateReply(long, referenceContract(t), nil)
	for _, v := range res.Violations {
		assert.NotEqual(t, CheckSourceAttribution, v.Check)
	}
}

func TestValidateReply_ViolationsAccumulate(t *testing.T) {
	reply := "memory frames: 12. Kirk is level 40. Patch 12.3 nerfed him."
	res := ValidateReply(reply, fleetContract(t), nil)

	require.False(t, res.Pass)
	checks := make(map[string]bool)
	for _, v := range res.Violations {
		checks[v.Check] = true
	}
	assert.True(t, checks[CheckDiagnosticClaim])
	assert.True(t, checks[CheckUncitedNumeric])
	assert.True(t, checks[CheckPatchClaim])
}

func TestValidateReply_DockPlanningGroundedReplyPasses(t *testing.T) {
	res := ValidateReply("I've set dock 3 to the PvP loadout based on your data.", dockContract(t), nil)
	assert.True(t, res.Pass)
	assert.Empty(t, res.Violations)
}

func TestSnippet_TruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 100)
	got := snippet(long)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("é", 80)+"…", got)
}

func TestSnippet_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "Khan is level 40", snippet("  Khan is level 40  "))
}
