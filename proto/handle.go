package proto

// HandleToggleOn enables intent handling at a site.
// Topic: rhasspy/handle/toggleOn
type HandleToggleOn struct {
	SiteID string `json:"siteId,omitempty"`
}

func (HandleToggleOn) Kind() Kind { return KindHandleToggleOn }

// HandleToggleOff disables intent handling at a site.
// Topic: rhasspy/handle/toggleOff
type HandleToggleOff struct {
	SiteID string `json:"siteId,omitempty"`
}

func (HandleToggleOff) Kind() Kind { return KindHandleToggleOff }
