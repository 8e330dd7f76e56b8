// Package plantuml emits PlantUML source for tag history graphs.
package plantuml

import (
	"fmt"
	"strings"

	"github.com/masmgr/taggraph/internal/gitobj"
)

// Build renders the tag segments as PlantUML: one package per tag in the
// given order, one node per commit id, and edges chaining the commits
// oldest to newest. Nodes carry the commit id only; the diagram shows graph
// shape, not metadata.
func Build(tags []string, segments map[string]gitobj.TagSegment) string {
	var buff strings.Builder
	buff.WriteString("@startuml\n")

	for _, tag := range tags {
		segment := segments[tag]

		fmt.Fprintf(&buff, "package \"%s\" {\n", tag)
		for i, commit := range segment.Commits {
			fmt.Fprintf(&buff, "node \"%s\" as %s_%d\n", commit.ID, tag, i)
		}
		for i := 0; i+1 < len(segment.Commits); i++ {
			fmt.Fprintf(&buff, "%s_%d --> %s_%d\n", tag, i, tag, i+1)
		}
		buff.WriteString("}\n")
	}

	buff.WriteString("@enduml")
	return buff.String()
}
