package view

// Composer is the render model of the post draft.
type Composer struct {
	UserInitial    string `json:"userInitial"`
	Text           string `json:"text"`
	Preview        string `json:"preview,omitempty"`
	ImageName      string `json:"imageName,omitempty"`
	HasImage       bool   `json:"hasImage"`
	Submitting     bool   `json:"submitting"`
	SubmitDisabled bool   `json:"submitDisabled"`
}

// Page is everything the timeline template draws. Alerts are one-shot
// messages raised by the previous action.
type Page struct {
	Header   Header   `json:"header"`
	Composer Composer `json:"composer"`
	Cards    []Card   `json:"cards"`
	Alerts   []string `json:"alerts,omitempty"`
	Loading  bool     `json:"loading"`
}
