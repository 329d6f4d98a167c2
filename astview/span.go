package astview

import "fmt"

// Span is an extent of source text. Lines are 1-based and columns are
// 0-based, matching what the parsing collaborator reports. The end
// position is lexically >= the start position.
type Span struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// Before orders spans by start position, then by end position.
func (s Span) Before(o Span) bool {
	if s.StartLine != o.StartLine {
		return s.StartLine < o.StartLine
	}
	if s.StartCol != o.StartCol {
		return s.StartCol < o.StartCol
	}
	if s.EndLine != o.EndLine {
		return s.EndLine < o.EndLine
	}
	return s.EndCol < o.EndCol
}

// Contains reports whether the 1-based line / 0-based column position
// falls inside the span. The end position is exclusive.
func (s Span) Contains(line, col int) bool {
	if line < s.StartLine || line > s.EndLine {
		return false
	}
	if line == s.StartLine && col < s.StartCol {
		return false
	}
	if line == s.EndLine && col >= s.EndCol {
		return false
	}
	return true
}

// Height is the number of source lines the span touches.
func (s Span) Height() int {
	return s.EndLine - s.StartLine + 1
}

func (s Span) String() string {
	return fmt.Sprintf("%04d:%03d -> %04d:%03d", s.StartLine, s.StartCol, s.EndLine, s.EndCol)
}
