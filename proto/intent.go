package proto

// Intent names a recognized intent with its confidence.
type Intent struct {
	IntentName      string  `json:"intentName"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

// SlotRange locates a slot value inside the input text. Start is inclusive,
// End exclusive. RawStart/RawEnd refer to the unsubstituted input.
type SlotRange struct {
	Start    int  `json:"start"`
	End      int  `json:"end"`
	RawStart *int `json:"rawStart,omitempty"`
	RawEnd   *int `json:"rawEnd,omitempty"`
}

// Slot is a named entity extracted from an intent.
type Slot struct {
	Entity     string         `json:"entity"`
	Value      map[string]any `json:"value"`
	SlotName   string         `json:"slotName,omitempty"`
	RawValue   string         `json:"rawValue,omitempty"`
	Confidence float64        `json:"confidence,omitempty"`
	Range      *SlotRange     `json:"range,omitempty"`
}

// AsrTokenTime holds the start/end time of a token in seconds relative to
// the beginning of the utterance.
type AsrTokenTime struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// AsrToken is one recognized token with its confidence and character range.
type AsrToken struct {
	Value      string        `json:"value"`
	Confidence float64       `json:"confidence"`
	RangeStart int           `json:"rangeStart"`
	RangeEnd   int           `json:"rangeEnd"`
	Time       *AsrTokenTime `json:"time,omitempty"`
}
