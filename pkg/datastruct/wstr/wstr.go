package wstr

import (
	"math"

	"github.com/pkg/errors"
)

// MaxCapacity is the largest number of slots a single Wstr may allocate.
const MaxCapacity = math.MaxInt32

var (
	ErrOutOfRange        = errors.New("index out of range")
	ErrCapacityExhausted = errors.New("capacity exhausted")
	ErrNegativeCount     = errors.New("negative count")
)

// Wstr is a growable string of wide characters.
// len(buf) is the capacity, only buf[:length] is meaningful.
type Wstr struct {
	buf    []rune
	length int
}

func NewEmpty() *Wstr {
	return &Wstr{}
}

// newWithLength allocates a string of the given length with no spare capacity.
func newWithLength(length int) *Wstr {
	return &Wstr{
		buf:    make([]rune, length),
		length: length,
	}
}

func NewFilled(length int, symbol rune) (*Wstr, error) {
	if length < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "length %d", length)
	}
	if length > MaxCapacity {
		return nil, errors.Wrapf(ErrCapacityExhausted, "length %d exceeds %d", length, MaxCapacity)
	}
	s := newWithLength(length)
	for i := 0; i < length; i++ {
		s.buf[i] = symbol
	}
	return s, nil
}

// New widens every byte of text into one rune. Text after the first NUL is ignored.
func New(text string) *Wstr {
	return FromBytes([]byte(text))
}

func FromBytes(text []byte) *Wstr {
	n := 0
	for n < len(text) && text[n] != 0 {
		n++
	}
	s := newWithLength(n)
	for i := 0; i < n; i++ {
		s.buf[i] = rune(text[i])
	}
	return s
}

func FromRunes(text []rune) *Wstr {
	n := 0
	for n < len(text) && text[n] != 0 {
		n++
	}
	s := newWithLength(n)
	copy(s.buf, text[:n])
	return s
}

// Clone returns a deep copy without the receiver's spare capacity.
func (s *Wstr) Clone() *Wstr {
	c := newWithLength(s.length)
	copy(c.buf, s.buf[:s.length])
	return c
}

// Move hands the buffer over to a new Wstr and leaves s empty.
func (s *Wstr) Move() *Wstr {
	m := &Wstr{buf: s.buf, length: s.length}
	s.buf, s.length = nil, 0
	return m
}

// MoveFrom drops the current buffer of s and takes the one of src, src becomes empty.
func (s *Wstr) MoveFrom(src *Wstr) {
	if s == src {
		return
	}
	s.buf, s.length = src.buf, src.length
	src.buf, src.length = nil, 0
}

// Assign copies the content of src into s. The buffer is reallocated to exactly
// src.Len() slots when the lengths differ and reused otherwise.
func (s *Wstr) Assign(src *Wstr) {
	if s == src {
		return
	}
	if src.length != s.length {
		s.buf = make([]rune, src.length)
		s.length = src.length
	}
	copy(s.buf[:s.length], src.buf[:src.length])
}

func (s *Wstr) Swap(other *Wstr) {
	s.buf, other.buf = other.buf, s.buf
	s.length, other.length = other.length, s.length
}

func (s *Wstr) Len() int {
	return s.length
}

func (s *Wstr) Cap() int {
	return len(s.buf)
}

// Remaining returns the number of spare slots.
func (s *Wstr) Remaining() int {
	return len(s.buf) - s.length
}

func (s *Wstr) IsEmpty() bool {
	return s.length == 0
}

// Reserve makes sure at least required slots are allocated, growing by half of the
// current capacity when it has to grow.
func (s *Wstr) Reserve(required int) error {
	capacity := len(s.buf)
	if capacity >= required {
		return nil
	}
	if required > MaxCapacity {
		return errors.Wrapf(ErrCapacityExhausted, "required %d, max %d", required, MaxCapacity)
	}
	grown := capacity + capacity>>1
	if grown > MaxCapacity {
		grown = MaxCapacity
	}
	if grown < required {
		grown = required
	}
	return s.Resize(grown)
}

// Resize reallocates the buffer to exactly newCapacity slots. The length is cut when
// the new capacity is smaller than it.
func (s *Wstr) Resize(newCapacity int) error {
	if newCapacity == len(s.buf) {
		return nil
	}
	if newCapacity < 0 {
		return errors.Wrapf(ErrNegativeCount, "capacity %d", newCapacity)
	}
	if newCapacity > MaxCapacity {
		return errors.Wrapf(ErrCapacityExhausted, "capacity %d exceeds %d", newCapacity, MaxCapacity)
	}
	if s.length > newCapacity {
		s.length = newCapacity
	}
	buf := make([]rune, newCapacity)
	copy(buf, s.buf[:s.length])
	s.buf = buf
	return nil
}

// Shrink drops all spare capacity.
func (s *Wstr) Shrink() {
	_ = s.Resize(s.length)
}

func (s *Wstr) checkIndex(index int) error {
	if index < 0 || index >= s.length {
		return errors.Wrapf(ErrOutOfRange, "index %d, length %d", index, s.length)
	}
	return nil
}

func (s *Wstr) At(index int) (rune, error) {
	if err := s.checkIndex(index); err != nil {
		return 0, err
	}
	return s.buf[index], nil
}

// Ref returns a pointer to the character at index. It stays valid until the next
// reallocation of s.
func (s *Wstr) Ref(index int) (*rune, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	return &s.buf[index], nil
}

func (s *Wstr) Set(index int, r rune) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.buf[index] = r
	return nil
}

func (s *Wstr) Runes() []rune {
	result := make([]rune, s.length)
	copy(result, s.buf[:s.length])
	return result
}

func (s *Wstr) String() string {
	return string(s.buf[:s.length])
}
