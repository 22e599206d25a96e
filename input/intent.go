package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m, Ctrl+S
	IntentResize     // Terminal resize event

	// Game intents
	IntentToss  // Space, r
	IntentStop  // s, Enter
	IntentReset // x
)

// Intent is a translated input event
type Intent struct {
	Type IntentType

	// Width and Height are set for IntentResize
	Width, Height int
}
