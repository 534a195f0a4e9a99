package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/encoding"
)

// Describe summarises an instance and its encoding as Markdown.
func Describe(in *domain.Instance, enc *encoding.Encoding) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s (size %d)\n\n", in.Domain, in.Size)

	sb.WriteString("| | count |\n|---|---|\n")
	fmt.Fprintf(&sb, "| locations | %d |\n", len(in.Locations))
	fmt.Fprintf(&sb, "| edges | %d |\n", len(in.Edges))
	fmt.Fprintf(&sb, "| inputs | %d |\n", len(in.Partition.Inputs))
	fmt.Fprintf(&sb, "| outputs | %d |\n", len(in.Partition.Outputs))
	fmt.Fprintf(&sb, "| fluents | %d |\n", len(in.Fluents))
	if enc != nil {
		fmt.Fprintf(&sb, "| formula bytes | %d |\n", len(enc.Formula))
	}
	sb.WriteString("\n")

	sb.WriteString("## Partition\n\n")
	fmt.Fprintf(&sb, "- **inputs**: %s\n", code(in.Partition.Inputs))
	fmt.Fprintf(&sb, "- **outputs**: %s\n\n", code(in.Partition.Outputs))

	sb.WriteString("## Actions\n\n")
	sb.WriteString("| action | precondition | add | delete |\n|---|---|---|---|\n")
	for _, a := range in.Actions {
		fmt.Fprintf(&sb, "| `%s` | `%s` | %s | %s |\n",
			a.Name, escapePipes(a.Precondition), code(a.Add), code(a.Del))
	}
	sb.WriteString("\n")

	sb.WriteString("## Conditions\n\n")
	fmt.Fprintf(&sb, "- **init**: %s\n", code(in.Init))
	fmt.Fprintf(&sb, "- **goal**: %s\n", code(in.Goal))
	if len(in.GameOver) > 0 {
		fmt.Fprintf(&sb, "- **game over**: %s\n", code(in.GameOver))
	}

	if enc != nil && len(enc.Axioms) > 0 {
		sb.WriteString("\n## Frame axioms\n\n")
		sb.WriteString("| fluent | shape |\n|---|---|\n")
		for _, ax := range enc.Axioms {
			fmt.Fprintf(&sb, "| `%s` | %s |\n", ax.Fluent, ax.Shape)
		}
	}

	return sb.String()
}

func code(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	return strings.Join(quoted, ", ")
}

// escapePipes keeps disjunctions from splitting table cells.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
