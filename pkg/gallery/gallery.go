// Package gallery manages the caller-owned collection of uploaded photographs.
// The compositing stages only read image data from it; background removal is
// the one operation that writes new working data back.
package gallery

import (
	"errors"
	"fmt"
)

// ErrLastImage is returned when removing the sole remaining image. A non-empty
// collection never becomes empty again.
var ErrLastImage = errors.New("collection must keep at least one image")

// SourceImage is one uploaded photograph. Original holds the bytes as
// captured and never changes; Working starts as a copy of Original and is
// replaced by background-removal results.
type SourceImage struct {
	ID       int
	Name     string
	Size     int64
	Original []byte
	Working  []byte
}

// Restore resets the working data back to the original capture.
func (img *SourceImage) Restore() {
	img.Working = img.Original
}

// Collection is an ordered set of source images with a selection cursor.
// It is caller-owned mutable state and not safe for concurrent use.
type Collection struct {
	images  []*SourceImage
	current int
	nextID  int
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends an image and returns it. The first added image becomes current.
func (c *Collection) Add(name string, data []byte) *SourceImage {
	c.nextID++
	img := &SourceImage{
		ID:       c.nextID,
		Name:     name,
		Size:     int64(len(data)),
		Original: data,
		Working:  data,
	}
	c.images = append(c.images, img)
	return img
}

// Remove deletes the image at index. Removing the last remaining image is
// rejected and leaves the collection unchanged.
func (c *Collection) Remove(index int) error {
	if index < 0 || index >= len(c.images) {
		return fmt.Errorf("image index %d out of range", index)
	}
	if len(c.images) <= 1 {
		return ErrLastImage
	}
	c.images = append(c.images[:index], c.images[index+1:]...)
	if c.current >= len(c.images) {
		c.current = len(c.images) - 1
	}
	return nil
}

// Len returns the number of images.
func (c *Collection) Len() int {
	return len(c.images)
}

// Select moves the selection cursor.
func (c *Collection) Select(index int) error {
	if index < 0 || index >= len(c.images) {
		return fmt.Errorf("image index %d out of range", index)
	}
	c.current = index
	return nil
}

// CurrentIndex returns the selection cursor position.
func (c *Collection) CurrentIndex() int {
	return c.current
}

// Current returns the selected image, or nil when the collection is empty.
func (c *Collection) Current() *SourceImage {
	if len(c.images) == 0 {
		return nil
	}
	return c.images[c.current]
}

// At returns the image at index.
func (c *Collection) At(index int) (*SourceImage, error) {
	if index < 0 || index >= len(c.images) {
		return nil, fmt.Errorf("image index %d out of range", index)
	}
	return c.images[index], nil
}

// WorkingData returns every image's working bytes in collection order, the
// shape the photo compositor consumes.
func (c *Collection) WorkingData() [][]byte {
	out := make([][]byte, len(c.images))
	for i, img := range c.images {
		out[i] = img.Working
	}
	return out
}
