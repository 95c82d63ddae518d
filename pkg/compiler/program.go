package compiler

// opcode identifies one append operation in an emitted program.
type opcode uint8

const (
	// opText appends an embedded literal string.
	opText opcode = iota + 1
	// opRune appends a single rune, the fast path for one-character
	// literals.
	opRune
	// opSeed writes a dynamic slot's output into the still-empty buffer.
	// Only valid as the first instruction of a program with no presize.
	opSeed
	// opModel appends a dynamic slot's output.
	opModel
)

type instruction struct {
	op   opcode
	text string // opText
	char rune   // opRune
	slot int    // opSeed, opModel
}

// Program is the low-level representation of one artifact, emitted by the
// compiler and consumed by the loader. Dynamic sub-models are not part of the
// program; it carries only the handoff keys under which they were stored, so
// the representation itself contains nothing but constants.
type Program struct {
	name     string
	presize  int
	slotKeys []string
	code     []instruction
}

// Name returns the identifier the artifact will be loaded under.
func (p *Program) Name() string {
	return p.name
}

// addSlot records a handoff key and returns the slot index it resolves into.
func (p *Program) addSlot(key string) int {
	p.slotKeys = append(p.slotKeys, key)
	return len(p.slotKeys) - 1
}
