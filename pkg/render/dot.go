// Package render turns a region collection into Graphviz visualizations of
// its inheritance chain: DOT text via [ToDOT] and rendered SVG via
// [RenderSVG].
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/apiregions/regions/pkg/region"
)

// Options configures chain rendering.
type Options struct {
	// Detailed includes each region's own exports in its node label.
	// When false, only the region name is shown.
	Detailed bool
}

// ToDOT converts a region collection to Graphviz DOT format. Each region
// becomes a node and each parent link an edge pointing at the region it
// extends. Render the result with [RenderSVG].
func ToDOT(c *region.Collection, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph regions {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for r := range c.All() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", r.Name(), fmtLabel(r, opts.Detailed))
	}

	buf.WriteString("\n")
	for r := range c.All() {
		if p := r.Parent(); p != nil {
			fmt.Fprintf(&buf, "  %q -> %q;\n", r.Name(), p.Name())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(r *region.Region, detailed bool) string {
	if !detailed {
		return r.Name()
	}
	exports := r.Exports()
	if len(exports) == 0 {
		return r.Name() + "\n(no exports)"
	}
	return r.Name() + "\n" + strings.Join(exports, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
