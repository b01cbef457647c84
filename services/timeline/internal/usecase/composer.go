package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"sync"

	"sns-app/services/timeline/internal/entity"
	"sns-app/services/timeline/internal/view"
)

const MaxImageSize = 5 << 20

var (
	ErrImageTooLarge = errors.New("image exceeds 5MB")
	ErrNotImage      = errors.New("file is not an image")
)

// ValidateImage checks a picked file before it may enter the draft.
func ValidateImage(file *entity.ImageFile) error {
	if file.Size > MaxImageSize || int64(len(file.Data)) > MaxImageSize {
		return ErrImageTooLarge
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return ErrNotImage
	}
	return nil
}

// SubmitFunc receives the draft on submit. image is nil when none is attached.
type SubmitFunc func(ctx context.Context, text string, image *entity.ImageFile) error

// Composer is the post draft: text, an optional image and its preview.
type Composer struct {
	mu      sync.Mutex
	text    string
	image   *entity.ImageFile
	preview string
}

func NewComposer() *Composer {
	return &Composer{}
}

func (c *Composer) SetText(text string) {
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
}

// SelectImage stores file and its preview. A rejected file alerts the viewer
// and leaves the draft as it was.
func (c *Composer) SelectImage(file *entity.ImageFile, ui Prompter) bool {
	if file == nil {
		return false
	}

	switch err := ValidateImage(file); {
	case errors.Is(err, ErrImageTooLarge):
		ui.Alert(MsgImageTooLarge)
		return false
	case errors.Is(err, ErrNotImage):
		ui.Alert(MsgNotImage)
		return false
	}

	preview := "data:" + file.ContentType + ";base64," + base64.StdEncoding.EncodeToString(file.Data)

	c.mu.Lock()
	c.image = file
	c.preview = preview
	c.mu.Unlock()
	return true
}

// Clear drops the image and preview, keeping the text.
func (c *Composer) Clear() {
	c.mu.Lock()
	c.image = nil
	c.preview = ""
	c.mu.Unlock()
}

// Reset empties the whole draft.
func (c *Composer) Reset() {
	c.mu.Lock()
	c.text = ""
	c.image = nil
	c.preview = ""
	c.mu.Unlock()
}

// Submit hands the draft to submit and then resets it, whether or not submit
// succeeded.
func (c *Composer) Submit(ctx context.Context, submit SubmitFunc) error {
	c.mu.Lock()
	text, image := c.text, c.image
	c.mu.Unlock()

	err := submit(ctx, text, image)
	c.Reset()
	return err
}

func (c *Composer) CanSubmit(disabled bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return canSubmit(c.text, disabled)
}

func canSubmit(text string, disabled bool) bool {
	return !disabled && strings.TrimSpace(text) != ""
}

func (c *Composer) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

func (c *Composer) Image() *entity.ImageFile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.image
}

func (c *Composer) View(userInitial string, submitting bool) view.Composer {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := view.Composer{
		UserInitial:    userInitial,
		Text:           c.text,
		Preview:        c.preview,
		HasImage:       c.image != nil,
		Submitting:     submitting,
		SubmitDisabled: !canSubmit(c.text, submitting),
	}
	if c.image != nil {
		v.ImageName = c.image.Name
	}
	return v
}
