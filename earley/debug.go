package earley

import (
	"bytes"

	"github.com/npillmayer/chartly/cfg"
	"github.com/npillmayer/chartly/iteratable"
)

// DumpChart logs every chart state of the parser. Visible in debug mode
// only.
func (p *Parser) DumpChart() {
	for pos := range p.chart {
		dumpState(p.grammar, p.chart, pos)
	}
}

func dumpState(g *cfg.Grammar, states []*iteratable.Set, stateno int) {
	tracer().Debugf("--- State %04d ------------------------------------", stateno)
	S := states[stateno]
	n := 1
	S.Each(func(el interface{}) {
		item := el.(cfg.Item)
		tracer().Debugf("[%2d] %s @%d", n, g.FormatPoint(item.Point), item.Origin)
		n++
	})
}

func itemSetString(g *cfg.Grammar, S *iteratable.Set) string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	S.Each(func(el interface{}) {
		item := el.(cfg.Item)
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(g.FormatPoint(item.Point))
	})
	b.WriteString(" }")
	return b.String()
}
