package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidInput marks a token that could not be parsed as the expected type.
var ErrInvalidInput = errors.New("invalid input")

// Reader pulls lines and whitespace separated tokens from an input stream in
// the order the demo asks for them.
type Reader struct {
	r *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Line returns the rest of the current line without its line terminator.
// A final line without a trailing newline is returned as is.
func (r *Reader) Line() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", io.ErrUnexpectedEOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Token skips leading whitespace, line breaks included, and returns the next
// run of non-space characters. The delimiter after the token is left unread.
func (r *Reader) Token() (string, error) {
	var sb strings.Builder
	for {
		ch, _, err := r.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if sb.Len() == 0 {
					return "", io.ErrUnexpectedEOF
				}
				return sb.String(), nil
			}
			return "", err
		}

		if unicode.IsSpace(ch) {
			if sb.Len() == 0 {
				continue
			}
			if err := r.r.UnreadRune(); err != nil {
				return "", err
			}
			return sb.String(), nil
		}
		sb.WriteRune(ch)
	}
}

// Float reads a real number token.
func (r *Reader) Float(field string) (float64, error) {
	tok, err := r.Token()
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", field, err)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("read %s: %q is not a number: %w", field, tok, ErrInvalidInput)
	}
	return v, nil
}

// Int reads a base 10 integer token.
func (r *Reader) Int(field string) (int, error) {
	tok, err := r.Token()
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", field, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("read %s: %q is not an integer: %w", field, tok, ErrInvalidInput)
	}
	return v, nil
}

// Bool reads "true" or "false", ignoring case.
func (r *Reader) Bool(field string) (bool, error) {
	tok, err := r.Token()
	if err != nil {
		return false, fmt.Errorf("read %s: %w", field, err)
	}
	switch {
	case strings.EqualFold(tok, "true"):
		return true, nil
	case strings.EqualFold(tok, "false"):
		return false, nil
	default:
		return false, fmt.Errorf("read %s: %q is not true or false: %w", field, tok, ErrInvalidInput)
	}
}

// SkipLine discards everything up to and including the next line break.
func (r *Reader) SkipLine() error {
	_, err := r.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
