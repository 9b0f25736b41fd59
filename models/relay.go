package models

// RelayResult describes what actually reached the bot API for one submission.
type RelayResult struct {
	// TextSent is true when the formatted message was accepted.
	TextSent bool

	// PhotoAttached is true when the submission carried an image.
	PhotoAttached bool

	// PhotoSent is true when the image was accepted.
	PhotoSent bool

	// PhotoErr holds the reason the image could not be delivered.
	PhotoErr error
}

// Partial reports whether the text was delivered but the attached image was not.
func (r RelayResult) Partial() bool {
	return r.TextSent && r.PhotoAttached && !r.PhotoSent
}
