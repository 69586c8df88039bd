package lexer

import (
	"math"

	"fortio.org/safecast"

	"stlkit/internal/source"
)

// Cursor is a byte position inside a file with cheap mark/rewind.
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// maxContent is the largest input a Cursor can address with uint32 offsets.
var maxContent uint64 = math.MaxUint32

// NewCursor creates a new cursor for the provided file. Content beyond
// maxContent is not reachable; Lexer reports such files as too large.
func NewCursor(f *source.File) Cursor {
	n := min(uint64(len(f.Content)), maxContent)
	limit, _ := safecast.Conv[uint32](n)
	return Cursor{
		File:  f,
		Off:   0,
		Limit: limit,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// EatString consumes s if the input continues with it; otherwise nothing is consumed.
func (c *Cursor) EatString(s string) bool {
	m := c.Mark()
	for i := 0; i < len(s); i++ {
		if !c.Eat(s[i]) {
			c.Reset(m)
			return false
		}
	}
	return true
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}

// Since returns the bytes consumed after m.
func (c *Cursor) Since(m Mark) []byte {
	return c.File.Content[uint32(m):c.Off]
}
