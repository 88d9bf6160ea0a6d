package check

import "fmt"

// Optional is a position that may be absent, comparable with assert.Equal.
type Optional struct {
	Value   int
	Present bool
}

func Some(value int) Optional {
	return Optional{Value: value, Present: true}
}

func None() Optional {
	return Optional{}
}

// Index adapts a (pos, exists) pair, e.g. check.Index(s.IndexOf(sub)).
func Index(pos int, exists bool) Optional {
	if !exists {
		return None()
	}
	return Some(pos)
}

func (o Optional) String() string {
	if !o.Present {
		return "empty optional"
	}
	return fmt.Sprintf("optional{%d}", o.Value)
}
