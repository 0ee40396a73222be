package export

import (
	"fmt"
	"strings"

	"github.com/splitzee/splitzee/internal/models"
)

const tagline = "Split with Splitzee - Track Smart. Split Easy."

// ShareText renders a split as the plain-text message users paste into chats.
func ShareText(r models.SplitResult) string {
	var sb strings.Builder
	sb.WriteString("Expense Split Results:\n")
	fmt.Fprintf(&sb, "Total: $%s\n", formatAmount(r.Total))
	for _, p := range r.Participants {
		fmt.Fprintf(&sb, "%s: $%s\n", p.Name, formatAmount(p.Amount))
	}
	if r.Notes != "" {
		fmt.Fprintf(&sb, "\nNotes: %s\n", r.Notes)
	}
	sb.WriteString("\n" + tagline)
	return sb.String()
}
