package entity

import "path/filepath"

// ImageFile is an image picked in the composer, held in memory until submit.
type ImageFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

func (f *ImageFile) Extension() string {
	return filepath.Ext(f.Name)
}
