// Package parse turns textual valve descriptions into pressure.Record
// values. One valve per line:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve JJ has flow rate=21; tunnel leads to valve II
//
// Both the plural and the singular tunnel phrasing are accepted. The grammar
// is built once with participle; parsing is deterministic and side-effect
// free.
package parse

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/emwalker/valvenet/pressure"
)

// ErrSyntax wraps every grammar failure so callers can test with errors.Is
// without depending on participle error types.
var ErrSyntax = errors.New("parse: malformed valve description")

// valveLine is one valve description. Field tags are participle productions.
type valveLine struct {
	Name      string   `parser:"'Valve' @Ident"`
	Flow      int      `parser:"'has' 'flow' 'rate' '=' @Int ';'"`
	Neighbors []string `parser:"( 'tunnels' 'lead' 'to' 'valves' | 'tunnel' 'leads' 'to' 'valve' ) @Ident ( ',' @Ident )*"`
}

// valveFile is a newline-separated sequence of valve descriptions.
type valveFile struct {
	Valves []*valveLine `parser:"@@*"`
}

var valveGrammar = participle.MustBuild[valveFile]()

// Records parses input into solver records, preserving input order.
//
// Errors: ErrSyntax-wrapped participle failures, with position context from
// the underlying lexer. Structural problems (unknown neighbors, duplicate
// names) are not detected here - pressure.NewReducedNetwork owns those.
func Records(input string) ([]pressure.Record, error) {
	file, err := valveGrammar.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	records := make([]pressure.Record, 0, len(file.Valves))
	for _, v := range file.Valves {
		records = append(records, pressure.Record{
			Name:      v.Name,
			Flow:      v.Flow,
			Neighbors: v.Neighbors,
		})
	}

	return records, nil
}
