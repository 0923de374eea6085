package proto

// G2pPronounce requests phonetic pronunciations for words.
// Topic: rhasspy/g2p/pronounce
type G2pPronounce struct {
	Words      []string `json:"words"`
	ID         string   `json:"id,omitempty"`
	SiteID     string   `json:"siteId,omitempty"`
	SessionID  string   `json:"sessionId,omitempty"`
	NumGuesses int      `json:"numGuesses,omitempty"`
}

func (G2pPronounce) Kind() Kind { return KindG2pPronounce }

// G2pPronunciation is one guessed or looked-up pronunciation.
type G2pPronunciation struct {
	Phonemes []string `json:"phonemes"`
	Guessed  *bool    `json:"guessed,omitempty"`
}

// G2pPhonemes is the response to a pronounce request.
// Topic: rhasspy/g2p/phonemes
type G2pPhonemes struct {
	WordPhonemes map[string][]G2pPronunciation `json:"wordPhonemes"`
	ID           string                        `json:"id,omitempty"`
	SiteID       string                        `json:"siteId,omitempty"`
	SessionID    string                        `json:"sessionId,omitempty"`
}

func (G2pPhonemes) Kind() Kind { return KindG2pPhonemes }

// G2pError reports a failure in the grapheme-to-phoneme component.
// Topic: rhasspy/error/g2p
type G2pError struct {
	Error     string `json:"error"`
	SiteID    string `json:"siteId,omitempty"`
	Context   string `json:"context,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

func (G2pError) Kind() Kind { return KindG2pError }
