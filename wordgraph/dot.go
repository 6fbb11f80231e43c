package wordgraph

import (
	"fmt"
	"strings"
)

// DOT renders the graph in Graphviz DOT syntax. Nodes are orbit indices and
// each defined edge is labelled with its generator index. Undefined slots are
// omitted, so a partially enumerated graph renders only what is known.
func (g *Graph) DOT() string {
	var b strings.Builder
	b.WriteString("digraph WordGraph {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=circle];\n")
	for node := 0; node < g.nodes; node++ {
		fmt.Fprintf(&b, "  %d;\n", node)
	}
	for node := 0; node < g.nodes; node++ {
		for label := 0; label < g.degree; label++ {
			dst := g.table[node*g.degree+label]
			if dst == Undefined {
				continue
			}
			fmt.Fprintf(&b, "  %d -> %d [label=%d];\n", node, dst, label)
		}
	}
	b.WriteString("}\n")
	return b.String()
}
