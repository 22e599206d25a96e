package input

// intentNames labels intents for the help line and logs
var intentNames = map[IntentType]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentToggleMute: "mute",
	IntentResize:     "resize",
	IntentToss:       "toss",
	IntentStop:       "stop",
	IntentReset:      "reset",
}

func (t IntentType) String() string {
	if n, ok := intentNames[t]; ok {
		return n
	}
	return "unknown"
}
