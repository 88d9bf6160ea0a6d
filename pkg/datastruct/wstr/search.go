package wstr

func (s *Wstr) IndexOfRune(r rune) (pos int, exists bool) {
	for i := 0; i < s.length; i++ {
		if s.buf[i] == r {
			return i, true
		}
	}
	return 0, false
}

func (s *Wstr) IndexOfByte(b byte) (pos int, exists bool) {
	return s.IndexOfRune(rune(b))
}

// IndexOf returns the start of the first occurrence of sub.
// The empty string is found at 0, even inside an empty string.
func (s *Wstr) IndexOf(sub *Wstr) (pos int, exists bool) {
	if sub.length == 0 {
		return 0, true
	}
	last := s.length - sub.length
	for start := 0; start <= last; start++ {
		matched := 0
		for matched < sub.length && s.buf[start+matched] == sub.buf[matched] {
			matched++
		}
		if matched == sub.length {
			return start, true
		}
	}
	return 0, false
}

func (s *Wstr) Contains(sub *Wstr) bool {
	_, exists := s.IndexOf(sub)
	return exists
}
