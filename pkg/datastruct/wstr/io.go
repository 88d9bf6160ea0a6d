package wstr

import (
	"io"

	"github.com/pkg/errors"
)

// RuneWriter is a sink that keeps characters wide, e.g. *bufio.Writer or *strings.Builder.
type RuneWriter interface {
	WriteRune(r rune) (int, error)
}

// WriteTo writes every character narrowed to its low byte, with nothing around them.
func (s *Wstr) WriteTo(w io.Writer) (int64, error) {
	if s.length == 0 {
		return 0, nil
	}
	p := make([]byte, s.length)
	for i := 0; i < s.length; i++ {
		p[i] = byte(s.buf[i])
	}
	n, err := w.Write(p)
	return int64(n), err
}

func (s *Wstr) WriteRunesTo(w RuneWriter) (int, error) {
	total := 0
	for i := 0; i < s.length; i++ {
		n, err := w.WriteRune(s.buf[i])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Scan appends bytes from src up to the next '\n', which is left unread in src.
// io.EOF is returned only when src was already exhausted.
func (s *Wstr) Scan(src io.ByteScanner) error {
	read := 0
	for {
		b, err := src.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if b == '\n' {
			if err = src.UnreadByte(); err != nil {
				return errors.Wrap(err, "unread newline")
			}
			return nil
		}
		if err = s.AppendByte(b); err != nil {
			return err
		}
		read++
	}
	if read == 0 {
		return io.EOF
	}
	return nil
}

// ScanRunes is Scan for a source of wide characters.
func (s *Wstr) ScanRunes(src io.RuneScanner) error {
	read := 0
	for {
		r, _, err := src.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if r == '\n' {
			if err = src.UnreadRune(); err != nil {
				return errors.Wrap(err, "unread newline")
			}
			return nil
		}
		if err = s.AppendRune(r); err != nil {
			return err
		}
		read++
	}
	if read == 0 {
		return io.EOF
	}
	return nil
}
