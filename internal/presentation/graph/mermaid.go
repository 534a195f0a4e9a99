package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/naming"
)

// Overlay marks locations to highlight on the diagram.
type Overlay struct {
	Start domain.Location
	Goal  domain.Location
	// Spares lists the locations holding a spare tire initially.
	Spares []domain.Location
}

// GenerateMermaid produces a Mermaid flowchart of the location graph.
// It applies semantic styling:
// - Start: ((Circle))
// - Goal: [[Subroutine]]
// - Default: [Rectangle]
// Symmetric edges are drawn once as an undirected link.
func GenerateMermaid(in *domain.Instance, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	namer := naming.New(maxCoord(in.Locations))
	id := func(l domain.Location) string { return "L" + namer.Location(l) }

	for _, l := range in.Locations {
		opener, closer := "[", "]"
		if overlay != nil {
			switch l {
			case overlay.Start:
				opener, closer = "((", "))"
			case overlay.Goal:
				opener, closer = "[[", "]]"
			}
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id(l), opener, l, closer))
	}

	edges := make(map[domain.Edge]bool, len(in.Edges))
	for _, e := range in.Edges {
		edges[e] = true
	}
	drawn := make(map[domain.Edge]bool, len(in.Edges))
	for _, e := range in.Edges {
		if drawn[e] {
			continue
		}
		back := domain.Edge{From: e.To, To: e.From}
		arrow := "-->"
		if edges[back] {
			arrow = "<-->"
			drawn[back] = true
		}
		drawn[e] = true
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", id(e.From), arrow, id(e.To)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef spare fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef goal fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		onBoard := make(map[domain.Location]bool, len(in.Locations))
		for _, l := range in.Locations {
			onBoard[l] = true
		}
		seen := make(map[domain.Location]bool)
		for _, l := range overlay.Spares {
			if !seen[l] && onBoard[l] {
				seen[l] = true
				sb.WriteString(fmt.Sprintf("    class %s spare;\n", id(l)))
			}
		}
		if onBoard[overlay.Goal] {
			sb.WriteString(fmt.Sprintf("    class %s goal;\n", id(overlay.Goal)))
		}
	}

	return sb.String()
}

func maxCoord(locs []domain.Location) int {
	m := 0
	for _, l := range locs {
		m = max(m, l.I, l.J)
	}
	return m
}
