// internal/protocol/opcodes.go
package protocol

// =======================
// (1, 2): int and no-argument handlers
// =======================
const (
	OpcodeMixed    = 1
	SubopcodeMixed = 2
)

// =======================
// (2, 4): nullable string
// =======================
const (
	OpcodeText    = 2
	SubopcodeText = 4
)

const (
	// No arguments
	OpcodeNoArgs    = 3
	SubopcodeNoArgs = 2

	// []int
	OpcodeInts    = 4
	SubopcodeInts = 1

	// []string
	OpcodeStrings    = 5
	SubopcodeStrings = 3

	// float64, string
	OpcodeMeasure    = 6
	SubopcodeMeasure = 1
)
