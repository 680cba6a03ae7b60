package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/Guffawaffle/majel/internal/service"
)

// FormatWelcome renders the chat session banner.
func FormatWelcome(rosterCount int) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("MAJEL") + " " + Dim("fleet operations assistant") + "\n")
	if rosterCount > 0 {
		b.WriteString(Dim(fmt.Sprintf("Roster loaded: %d officers. ", rosterCount)))
	} else {
		b.WriteString(Dim("No roster imported. Answers will lack fleet context. "))
	}
	b.WriteString(Dim("Type your question, or 'exit' to leave.") + "\n")
	return b.String()
}

// FormatAnswer renders an assistant reply with its verdict line.
func FormatAnswer(reply *service.AssistantReply) string {
	var b strings.Builder
	b.WriteString(StyleFg.Render(reply.Text))
	b.WriteString("\n\n")
	b.WriteString(VerdictIndicator(reply.Receipt.Verdict))
	b.WriteString(Dim(fmt.Sprintf("  %s · %dms · receipt %s",
		reply.Receipt.TaskType, reply.Receipt.Duration.Milliseconds(), shortID(reply.Receipt.ID))))
	b.WriteString("\n")
	return b.String()
}

// FormatReceipt renders a single receipt in full.
func FormatReceipt(r *domain.Receipt) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("RECEIPT ") + StyleBold.Render(r.ID) + "\n\n")
	b.WriteString(labelLine("Verdict", VerdictIndicator(r.Verdict)))
	b.WriteString(labelLine("Task", string(r.TaskType)))
	b.WriteString(labelLine("Session", r.SessionID))
	b.WriteString(labelLine("Timestamp", r.Timestamp.Format("2006-01-02 15:04:05 MST")))
	b.WriteString(labelLine("Manifest", r.ContextManifest))
	b.WriteString(labelLine("Duration", fmt.Sprintf("%dms", r.Duration.Milliseconds())))
	b.WriteString(labelLine("Repair attempted", strconv.FormatBool(r.RepairAttempted)))

	if len(r.InjectedKeys) > 0 {
		b.WriteString(labelLine("Injected", strings.Join(r.InjectedKeys, ", ")))
	}
	if len(r.AppliedRuleIDs) > 0 {
		b.WriteString(labelLine("Rules applied", strings.Join(r.AppliedRuleIDs, ", ")))
	}

	if len(r.Provenance) > 0 {
		b.WriteString("\n" + StyleHeader.Render("Provenance") + "\n")
		for _, p := range r.Provenance {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				StyleFg.Render(p.Name), Dim(p.Source), Dim("imported "+p.ImportedAt.Format("2006-01-02"))))
		}
	}

	if len(r.Violations) > 0 {
		b.WriteString("\n" + StyleHeader.Render("Violations") + "\n")
		for _, v := range r.Violations {
			b.WriteString("  " + StyleRed.Render(v.Check) + " " + StyleFg.Render(v.Detail) + "\n")
			if v.Snippet != "" {
				b.WriteString("    " + Dim(v.Snippet) + "\n")
			}
		}
	}

	return b.String()
}

// FormatReceiptList renders receipts as a table.
func FormatReceiptList(receipts []*domain.Receipt) string {
	if len(receipts) == 0 {
		return Dim("No receipts recorded.") + "\n"
	}

	rows := make([][]string, 0, len(receipts))
	for _, r := range receipts {
		rows = append(rows, []string{
			shortID(r.ID),
			r.Timestamp.Format("01-02 15:04"),
			string(r.TaskType),
			VerdictIndicator(r.Verdict),
			strconv.Itoa(len(r.Violations)),
		})
	}
	return RenderTable([]string{"ID", "TIME", "TASK", "VERDICT", "VIOLATIONS"}, rows)
}

// FormatOfficerList renders the roster as a table.
func FormatOfficerList(officers []*domain.Officer) string {
	if len(officers) == 0 {
		return Dim("Roster is empty. Import one with: majel roster import <file.csv>") + "\n"
	}

	rows := make([][]string, 0, len(officers))
	for _, o := range officers {
		rows = append(rows, []string{
			StyleFg.Render(o.Name),
			o.Faction,
			o.Rarity,
			strconv.Itoa(o.Level),
			Dim(o.ImportedAt.Format("2006-01-02")),
		})
	}
	return RenderTable([]string{"NAME", "FACTION", "RARITY", "LEVEL", "IMPORTED"}, rows)
}

// FormatOfficer renders one officer in full.
func FormatOfficer(o *domain.Officer) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(strings.ToUpper(o.Name)) + "\n\n")
	b.WriteString(labelLine("Faction", o.Faction))
	b.WriteString(labelLine("Rarity", o.Rarity))
	b.WriteString(labelLine("Level", strconv.Itoa(o.Level)))
	if o.CaptainManeuver != "" {
		b.WriteString(labelLine("Captain maneuver", o.CaptainManeuver))
	}
	if o.OfficerAbility != "" {
		b.WriteString(labelLine("Officer ability", o.OfficerAbility))
	}
	b.WriteString(labelLine("Source", o.Source))
	b.WriteString(labelLine("Imported", o.ImportedAt.Format("2006-01-02")))
	return b.String()
}

// FormatRuleList renders behavioral rules as a table.
func FormatRuleList(rules []*domain.BehavioralRule) string {
	if len(rules) == 0 {
		return Dim("No behavioral rules defined.") + "\n"
	}

	rows := make([][]string, 0, len(rules))
	for _, r := range rules {
		scope := string(r.TaskType)
		if scope == "" {
			scope = Dim("all")
		}
		state := StyleGreen.Render("on")
		if !r.Enabled {
			state = StyleDim.Render("off")
		}
		rows = append(rows, []string{
			shortID(r.ID),
			scope,
			string(r.Severity),
			state,
			r.Text,
		})
	}
	return RenderTable([]string{"ID", "SCOPE", "SEVERITY", "STATE", "TEXT"}, rows)
}

// FormatTranscript renders past chat turns, oldest first within the
// listing order the caller chose.
func FormatTranscript(entries []*domain.TranscriptEntry) string {
	if len(entries) == 0 {
		return Dim("No transcript entries recorded.") + "\n"
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(Dim(e.CreatedAt.Format("2006-01-02 15:04")) + " " + VerdictIndicator(e.Verdict) + "\n")
		b.WriteString("  " + StylePurple.Render("Admiral ❯ ") + StyleFg.Render(e.Question) + "\n")
		b.WriteString("  " + StyleBlue.Render("Majel   ❯ ") + e.Reply + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func labelLine(label, value string) string {
	return fmt.Sprintf("  %s %s\n", Dim(fmt.Sprintf("%-18s", label)), value)
}

// shortID returns the first UUID segment, enough to disambiguate in lists.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
