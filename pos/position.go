// Package pos provides the value types used to locate a name in source text:
// a 1-indexed-line/0-indexed-column Position, and a byte-offset-to-line index
// used to build one from a parser's byte ranges.
package pos

// Position is a half-open-by-convention source range: lines are 1-indexed,
// columns are 0-indexed. Two positions are equal only when all four fields
// match; the total order is by (StartLine, StartColumn).
type Position struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Less orders positions by (StartLine, StartColumn).
func (p Position) Less(q Position) bool {
	if p.StartLine != q.StartLine {
		return p.StartLine < q.StartLine
	}
	return p.StartColumn < q.StartColumn
}

// Equal reports whether all four fields match.
func (p Position) Equal(q Position) bool {
	return p == q
}

// Contains reports whether q's start falls within [p.start, p.end].
func (p Position) Contains(q Position) bool {
	start := Position{StartLine: p.StartLine, StartColumn: p.StartColumn}
	end := Position{StartLine: p.EndLine, StartColumn: p.EndColumn}
	qStart := Position{StartLine: q.StartLine, StartColumn: q.StartColumn}
	return !qStart.Less(start) && !end.Less(qStart)
}

// ContainsRange reports whether q lies entirely within p, start and end.
func (p Position) ContainsRange(q Position) bool {
	start := Position{StartLine: p.StartLine, StartColumn: p.StartColumn}
	end := Position{StartLine: p.EndLine, StartColumn: p.EndColumn}
	qStart := Position{StartLine: q.StartLine, StartColumn: q.StartColumn}
	qEnd := Position{StartLine: q.EndLine, StartColumn: q.EndColumn}
	return !qStart.Less(start) && !end.Less(qEnd)
}

// SameLine reports whether the position starts and ends on a single line.
func (p Position) SameLine() bool {
	return p.StartLine == p.EndLine
}
