package starley

import (
	"github.com/npillmayer/chartly/cfg"
)

// DumpChart logs every chart state of the parser, star items included.
// Visible in debug mode only.
func (p *Parser) DumpChart() {
	for pos := range p.chart {
		tracer().Debugf("--- State %04d ------------------------------------", pos)
		n := 1
		p.chart[pos].Each(func(el interface{}) {
			item := el.(cfg.Item)
			tracer().Debugf("[%2d] %s @%d", n, p.grammar.FormatPoint(item.Point), item.Origin)
			n++
		})
	}
}
