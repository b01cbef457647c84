package usecase

// Prompter is the viewer's blocking interaction surface.
type Prompter interface {
	Alert(message string)
	Confirm(message string) bool
}

const (
	MsgImageTooLarge = "Image must be 5MB or smaller."
	MsgNotImage      = "Please select an image file."
	MsgUploadFailed  = "Failed to upload the image."
	MsgConfirmDelete = "Delete this post?"
)
