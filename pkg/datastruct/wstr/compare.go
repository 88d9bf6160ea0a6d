package wstr

func (s *Wstr) Equals(other *Wstr) bool {
	if s == other {
		return true
	}
	if s.length != other.length {
		return false
	}
	for i := 0; i < s.length; i++ {
		if s.buf[i] != other.buf[i] {
			return false
		}
	}
	return true
}

// Compare orders strings of the same length by their first differing character and
// strings of different lengths by length, the longer one being greater.
func (s *Wstr) Compare(other *Wstr) int {
	if s.length != other.length {
		if s.length > other.length {
			return 1
		}
		return -1
	}
	for i := 0; i < s.length; i++ {
		a, b := s.buf[i], other.buf[i]
		if a > b {
			return 1
		} else if a < b {
			return -1
		}
	}
	return 0
}

func (s *Wstr) NotEquals(other *Wstr) bool {
	return !s.Equals(other)
}

func (s *Wstr) Less(other *Wstr) bool {
	return s.Compare(other) < 0
}

func (s *Wstr) LessOrEqual(other *Wstr) bool {
	return s.Compare(other) <= 0
}

func (s *Wstr) Greater(other *Wstr) bool {
	return s.Compare(other) > 0
}

func (s *Wstr) GreaterOrEqual(other *Wstr) bool {
	return s.Compare(other) >= 0
}
