package wstr

import "github.com/pkg/errors"

func (s *Wstr) AppendRune(r rune) error {
	if err := s.Reserve(s.length + 1); err != nil {
		return err
	}
	s.buf[s.length] = r
	s.length++
	return nil
}

func (s *Wstr) AppendByte(b byte) error {
	return s.AppendRune(rune(b))
}

// Append copies the content of other to the tail of s. other may be s itself.
func (s *Wstr) Append(other *Wstr) error {
	n := other.length
	if n == 0 {
		return nil
	}
	if n > MaxCapacity-s.length {
		return errors.Wrapf(ErrCapacityExhausted, "append %d to %d", n, s.length)
	}
	if err := s.Reserve(s.length + n); err != nil {
		return err
	}
	copy(s.buf[s.length:], other.buf[:n])
	s.length += n
	return nil
}

// Concat returns a new string holding s followed by other. Neither operand changes.
func (s *Wstr) Concat(other *Wstr) (*Wstr, error) {
	if other.length == 0 {
		return s.Clone(), nil
	}
	if s.length == 0 {
		return other.Clone(), nil
	}
	if other.length > MaxCapacity-s.length {
		return nil, errors.Wrapf(ErrCapacityExhausted, "concat %d and %d", s.length, other.length)
	}
	result := newWithLength(s.length + other.length)
	copy(result.buf, s.buf[:s.length])
	copy(result.buf[s.length:], other.buf[:other.length])
	return result, nil
}

// Repeat returns a new string holding count copies of s.
func (s *Wstr) Repeat(count int) (*Wstr, error) {
	if count < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "count %d", count)
	}
	if count == 0 || s.length == 0 {
		return NewEmpty(), nil
	}
	if count > MaxCapacity/s.length {
		return nil, errors.Wrapf(ErrCapacityExhausted, "repeat %d times %d", s.length, count)
	}
	result := newWithLength(s.length * count)
	for i := 0; i < count; i++ {
		copy(result.buf[i*s.length:], s.buf[:s.length])
	}
	return result, nil
}
