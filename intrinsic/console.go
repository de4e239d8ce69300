package intrinsic

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

// Console is a line-oriented output sink. Every call writes whole lines
// with a single Write so concurrent callers never interleave within a line.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
	buf    []byte
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Stdout returns a Console writing to the process standard output.
func Stdout() *Console {
	return NewConsole(os.Stdout)
}

// SetPrefix sets a string written before every line.
func (c *Console) SetPrefix(prefix string) {
	c.mu.Lock()
	c.prefix = prefix
	c.mu.Unlock()
}

// Log writes text followed by a newline.
func (c *Console) Log(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = append(c.buf[:0], c.prefix...)
	c.buf = append(c.buf, text...)
	return c.flush()
}

// Print writes the values separated by single spaces followed by a newline.
func (c *Console) Print(v ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = append(c.buf[:0], c.prefix...)
	for i, val := range v {
		if i > 0 {
			c.buf = append(c.buf, ' ')
		}
		c.buf = appendValue(c.buf, val)
	}
	return c.flush()
}

func (c *Console) flush() error {
	c.buf = append(c.buf, '\n')
	_, err := c.w.Write(c.buf)
	if err != nil {
		return fmt.Errorf("intrinsic: console write: %w", err)
	}
	return nil
}

func appendValue(dst []byte, value any) []byte {
	switch v := value.(type) {
	case string:
		return append(dst, v...)
	case fmt.Stringer:
		return append(dst, v.String()...)
	case int:
		return strconv.AppendInt(dst, int64(v), 10)
	case int32:
		return strconv.AppendInt(dst, int64(v), 10)
	case int64:
		return strconv.AppendInt(dst, v, 10)
	case uint64:
		return strconv.AppendUint(dst, v, 10)
	case float32:
		return strconv.AppendFloat(dst, float64(v), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(dst, v, 'g', -1, 64)
	case bool:
		return strconv.AppendBool(dst, v)
	case error:
		return append(dst, v.Error()...)
	default:
		return fmt.Appendf(dst, "%v", v)
	}
}
