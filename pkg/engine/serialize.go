package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Delimiter bytes for the self-delimiting text format. Any distinct choice
// is conformant; these are chosen to read naturally and to never collide
// with the quoted-string escaping strconv.Quote already gives the one
// string-valued field (the strategy name).
const (
	beginObj  = '{'
	endObj    = '}'
	beginList = '['
	endList   = ']'
	fieldSep  = ','
	kvSep     = '='
)

// Serialize writes g as an object with fields mode, next, aiDepth,
// aiStrategy, dice (18 die-states in index order), and history (the four
// stacks, each most-recent-first).
func (g *Game) Serialize() string {
	var b strings.Builder
	b.WriteByte(beginObj)
	fmt.Fprintf(&b, "mode%c%d%c", kvSep, g.Mode, fieldSep)
	fmt.Fprintf(&b, "next%c%d%c", kvSep, g.Next, fieldSep)
	fmt.Fprintf(&b, "aiDepth%c%d%c", kvSep, g.AIDepth, fieldSep)
	fmt.Fprintf(&b, "aiStrategy%c", kvSep)
	writeStrategy(&b, g.AIStrategy)
	b.WriteByte(fieldSep)
	fmt.Fprintf(&b, "dice%c", kvSep)
	writeDiceList(&b, g.dice[:])
	b.WriteByte(fieldSep)
	fmt.Fprintf(&b, "history%c", kvSep)
	writeHistory(&b, g)
	b.WriteByte(endObj)
	return b.String()
}

func writeStrategy(b *strings.Builder, s Strategy) {
	b.WriteByte(beginObj)
	fmt.Fprintf(b, "name%c%s%c", kvSep, strconv.Quote(s.Name), fieldSep)
	fmt.Fprintf(b, "coeffDR%c%s%c", kvSep, strconv.FormatFloat(s.CoeffDiceRatio, 'g', -1, 64), fieldSep)
	fmt.Fprintf(b, "pat%c%s", kvSep, strconv.FormatFloat(s.Patience, 'g', -1, 64))
	b.WriteByte(endObj)
}

func writeDie(b *strings.Builder, d Die) {
	b.WriteByte(beginObj)
	fmt.Fprintf(b, "x%c%d%c", kvSep, d.X, fieldSep)
	fmt.Fprintf(b, "y%c%d%c", kvSep, d.Y, fieldSep)
	fmt.Fprintf(b, "col%c%d%c", kvSep, d.Color, fieldSep)
	former := int(d.Former)
	if !d.GotKilled() {
		former = -1
	}
	fmt.Fprintf(b, "fS%c%d%c", kvSep, former, fieldSep)
	fmt.Fprintf(b, "cS%c%d", kvSep, d.Current)
	b.WriteByte(endObj)
}

func writeDiceList(b *strings.Builder, dice []Die) {
	b.WriteByte(beginList)
	for i, d := range dice {
		if i > 0 {
			b.WriteByte(fieldSep)
		}
		writeDie(b, d)
	}
	b.WriteByte(endList)
}

func writeMove(b *strings.Builder, m Move) {
	b.WriteByte(beginObj)
	fmt.Fprintf(b, "idx%c%d%c", kvSep, m.DieIndex, fieldSep)
	fmt.Fprintf(b, "rel%c", kvSep)
	writeRelMove(b, m.Rel)
	b.WriteByte(endObj)
}

func writeRelMove(b *strings.Builder, r RelativeMove) {
	b.WriteByte(beginObj)
	fmt.Fprintf(b, "dx%c%d%c", kvSep, r.DX, fieldSep)
	fmt.Fprintf(b, "dy%c%d%c", kvSep, r.DY, fieldSep)
	fx := 0
	if r.FirstX {
		fx = 1
	}
	fmt.Fprintf(b, "fX%c%d", kvSep, fx)
	b.WriteByte(endObj)
}

// writeHistory emits the four stacks most-recent-first: moveStack/deathStack
// are stored oldest-first internally (append order), so they are walked in
// reverse.
func writeHistory(b *strings.Builder, g *Game) {
	b.WriteByte(beginObj)
	fmt.Fprintf(b, "moves%c", kvSep)
	writeMoveListReversed(b, g.moveStack)
	b.WriteByte(fieldSep)
	fmt.Fprintf(b, "deaths%c", kvSep)
	writeIntListReversed(b, g.deathStack)
	b.WriteByte(fieldSep)
	fmt.Fprintf(b, "movesPending%c", kvSep)
	writeMoveListReversed(b, g.redoMoveStack)
	b.WriteByte(fieldSep)
	fmt.Fprintf(b, "deathsPending%c", kvSep)
	writeIntListReversed(b, g.redoDeathStack)
	b.WriteByte(endObj)
}

func writeMoveListReversed(b *strings.Builder, stack []Move) {
	b.WriteByte(beginList)
	for i := len(stack) - 1; i >= 0; i-- {
		if i != len(stack)-1 {
			b.WriteByte(fieldSep)
		}
		writeMove(b, stack[i])
	}
	b.WriteByte(endList)
}

func writeIntListReversed(b *strings.Builder, stack []int) {
	b.WriteByte(beginList)
	for i := len(stack) - 1; i >= 0; i-- {
		if i != len(stack)-1 {
			b.WriteByte(fieldSep)
		}
		fmt.Fprintf(b, "%d", stack[i])
	}
	b.WriteByte(endList)
}

// --- decoding ---

// reader is a cursor over a serialized document. It never allocates past the
// raw substrings it returns, relying on the fact that every structural
// delimiter byte is reserved and cannot appear unescaped inside the one
// quoted field (the strategy name).
type reader struct {
	data []byte
	pos  int
}

func newReader(s string) *reader { return &reader{data: []byte(s)} }

func (r *reader) cur() byte {
	if r.pos >= len(r.data) {
		return 0
	}
	return r.data[r.pos]
}

func (r *reader) expect(b byte) error {
	if r.cur() != b {
		return fmt.Errorf("%w: expected %q, got %q", ErrMalformedToken, string(b), string(r.cur()))
	}
	r.pos++
	return nil
}

// readIdent reads up to the next '=' as a bare field name.
func (r *reader) readIdent() (string, error) {
	start := r.pos
	for r.pos < len(r.data) && r.data[r.pos] != kvSep {
		r.pos++
	}
	if r.pos >= len(r.data) {
		return "", ErrUnexpectedEOF
	}
	ident := string(r.data[start:r.pos])
	r.pos++
	return ident, nil
}

// readRawValue returns the text of one field's value, up to but not
// including the terminating separator or closing delimiter at the current
// nesting depth. It does not consume the terminator.
func (r *reader) readRawValue() (string, error) {
	start := r.pos
	depth := 0
	inQuote := false
	for r.pos < len(r.data) {
		c := r.data[r.pos]
		if inQuote {
			if c == '\\' {
				r.pos += 2
				continue
			}
			if c == '"' {
				inQuote = false
			}
			r.pos++
			continue
		}
		switch c {
		case '"':
			inQuote = true
			r.pos++
		case beginObj, beginList:
			depth++
			r.pos++
		case endObj, endList:
			if depth == 0 {
				return string(r.data[start:r.pos]), nil
			}
			depth--
			r.pos++
		case fieldSep:
			if depth == 0 {
				return string(r.data[start:r.pos]), nil
			}
			r.pos++
		default:
			r.pos++
		}
	}
	if depth != 0 || inQuote {
		return "", ErrUnbalancedDelim
	}
	return string(r.data[start:r.pos]), nil
}

// readObjectFields parses {k=v,k=v,...} into a map of raw value text.
func readObjectFields(r *reader) (map[string]string, error) {
	if err := r.expect(beginObj); err != nil {
		return nil, err
	}
	fields := map[string]string{}
	if r.cur() == endObj {
		r.pos++
		return fields, nil
	}
	for {
		key, err := r.readIdent()
		if err != nil {
			return nil, err
		}
		val, err := r.readRawValue()
		if err != nil {
			return nil, err
		}
		fields[key] = val
		if r.cur() == fieldSep {
			r.pos++
			continue
		}
		break
	}
	if err := r.expect(endObj); err != nil {
		return nil, err
	}
	return fields, nil
}

// readListItems parses [v,v,...] into a slice of raw item text.
func readListItems(r *reader) ([]string, error) {
	if err := r.expect(beginList); err != nil {
		return nil, err
	}
	var items []string
	if r.cur() == endList {
		r.pos++
		return items, nil
	}
	for {
		val, err := r.readRawValue()
		if err != nil {
			return nil, err
		}
		items = append(items, val)
		if r.cur() == fieldSep {
			r.pos++
			continue
		}
		break
	}
	if err := r.expect(endList); err != nil {
		return nil, err
	}
	return items, nil
}

func parseInt(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedToken, raw, err)
	}
	return v, nil
}

func parseFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedToken, raw, err)
	}
	return v, nil
}

func decodeStrategy(raw string) (Strategy, error) {
	fields, err := readObjectFields(newReader(raw))
	if err != nil {
		return Strategy{}, err
	}
	var s Strategy
	for key, val := range fields {
		switch key {
		case "name":
			name, err := strconv.Unquote(val)
			if err != nil {
				return Strategy{}, fmt.Errorf("%w: name %q: %v", ErrMalformedToken, val, err)
			}
			s.Name = name
		case "coeffDR":
			s.CoeffDiceRatio, err = parseFloat(val)
		case "pat":
			s.Patience, err = parseFloat(val)
		default:
			return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		if err != nil {
			return Strategy{}, err
		}
	}
	return s, nil
}

func decodeDie(raw string) (Die, error) {
	fields, err := readObjectFields(newReader(raw))
	if err != nil {
		return Die{}, err
	}
	var d Die
	var former int
	for key, val := range fields {
		switch key {
		case "x":
			d.X, err = parseInt(val)
		case "y":
			d.Y, err = parseInt(val)
		case "col":
			var c int
			c, err = parseInt(val)
			d.Color = Color(c)
		case "fS":
			former, err = parseInt(val)
		case "cS":
			var cs int
			cs, err = parseInt(val)
			d.Current = Orientation(cs)
		default:
			return Die{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		if err != nil {
			return Die{}, err
		}
	}
	if former >= 0 {
		d.Former = Orientation(former)
	}
	return d, nil
}

func decodeRelMove(raw string) (RelativeMove, error) {
	fields, err := readObjectFields(newReader(raw))
	if err != nil {
		return RelativeMove{}, err
	}
	var r RelativeMove
	for key, val := range fields {
		switch key {
		case "dx":
			r.DX, err = parseInt(val)
		case "dy":
			r.DY, err = parseInt(val)
		case "fX":
			var fx int
			fx, err = parseInt(val)
			r.FirstX = fx != 0
		default:
			return RelativeMove{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		if err != nil {
			return RelativeMove{}, err
		}
	}
	return r, nil
}

func decodeMove(raw string) (Move, error) {
	fields, err := readObjectFields(newReader(raw))
	if err != nil {
		return Move{}, err
	}
	var m Move
	for key, val := range fields {
		switch key {
		case "idx":
			m.DieIndex, err = parseInt(val)
		case "rel":
			m.Rel, err = decodeRelMove(val)
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		if err != nil {
			return Move{}, err
		}
	}
	return m, nil
}

// decodeMoveStackReversed parses a most-recent-first move list back into
// oldest-first (append) order.
func decodeMoveStackReversed(raw string) ([]Move, error) {
	items, err := readListItems(newReader(raw))
	if err != nil {
		return nil, err
	}
	stack := make([]Move, len(items))
	for i, it := range items {
		m, err := decodeMove(it)
		if err != nil {
			return nil, err
		}
		stack[len(items)-1-i] = m
	}
	return stack, nil
}

func decodeIntStackReversed(raw string) ([]int, error) {
	items, err := readListItems(newReader(raw))
	if err != nil {
		return nil, err
	}
	stack := make([]int, len(items))
	for i, it := range items {
		v, err := parseInt(it)
		if err != nil {
			return nil, err
		}
		stack[len(items)-1-i] = v
	}
	return stack, nil
}

func decodeHistory(raw string, g *Game) error {
	fields, err := readObjectFields(newReader(raw))
	if err != nil {
		return err
	}
	for key, val := range fields {
		switch key {
		case "moves":
			g.moveStack, err = decodeMoveStackReversed(val)
		case "deaths":
			g.deathStack, err = decodeIntStackReversed(val)
		case "movesPending":
			g.redoMoveStack, err = decodeMoveStackReversed(val)
		case "deathsPending":
			g.redoDeathStack, err = decodeIntStackReversed(val)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Deserialize parses data written by Serialize and reconstructs the board
// grid from the decoded dice positions.
func Deserialize(data string) (*Game, error) {
	fields, err := readObjectFields(newReader(data))
	if err != nil {
		return nil, err
	}
	g := &Game{}
	for key, val := range fields {
		switch key {
		case "mode":
			var v int
			v, err = parseInt(val)
			g.Mode = Mode(v)
		case "next":
			var v int
			v, err = parseInt(val)
			g.Next = Color(v)
		case "aiDepth":
			g.AIDepth, err = parseInt(val)
		case "aiStrategy":
			g.AIStrategy, err = decodeStrategy(val)
		case "dice":
			var items []string
			items, err = readListItems(newReader(val))
			if err == nil {
				for i, it := range items {
					if i >= len(g.dice) {
						break
					}
					g.dice[i], err = decodeDie(it)
					if err != nil {
						break
					}
				}
			}
		case "history":
			err = decodeHistory(val, g)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		if err != nil {
			return nil, err
		}
	}

	g.board = NewBoard()
	for i := range g.dice {
		d := &g.dice[i]
		if !d.GotKilled() {
			g.board.Set(d.X, d.Y, i)
		}
	}
	return g, nil
}
