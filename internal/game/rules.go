package game

const (
	DefaultLinesPerLevel = 10
	DefaultPointsPerLine = 100
)

// Rules holds the tunables of one game.
type Rules struct {
	Rows          int
	Cols          int
	SetSize       int
	LinesPerLevel int
	PointsPerLine int
}

func DefaultRules() Rules {
	return Rules{
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		SetSize:       DefaultSetSize,
		LinesPerLevel: DefaultLinesPerLevel,
		PointsPerLine: DefaultPointsPerLine,
	}
}

// normalized fills zero or negative fields with defaults.
func (r Rules) normalized() Rules {
	d := DefaultRules()
	if r.Rows <= 0 {
		r.Rows = d.Rows
	}
	if r.Cols <= 0 {
		r.Cols = d.Cols
	}
	if r.SetSize <= 0 {
		r.SetSize = d.SetSize
	}
	if r.LinesPerLevel <= 0 {
		r.LinesPerLevel = d.LinesPerLevel
	}
	if r.PointsPerLine < 0 {
		r.PointsPerLine = d.PointsPerLine
	}
	return r
}

// IsGameOver reports whether no piece in the set fits anywhere on the
// board. An empty set is never game over: the session always refills it.
func IsGameOver(b *Board, pieces []*Piece) bool {
	if len(pieces) == 0 {
		return false
	}
	for _, p := range pieces {
		if b.Fits(p) {
			return false
		}
	}
	return true
}

// CalculateLevel maps cumulative cleared lines to a level starting at 1.
func CalculateLevel(lines, linesPerLevel int) int {
	if linesPerLevel <= 0 {
		linesPerLevel = DefaultLinesPerLevel
	}
	if lines < 0 {
		lines = 0
	}
	return lines/linesPerLevel + 1
}

// ScoreForLines is the score awarded for one placement that cleared lines.
func ScoreForLines(lines, pointsPerLine int) int {
	if lines <= 0 {
		return 0
	}
	return lines * pointsPerLine
}
