// Package photos implements the photo compositing stage: normalized source
// bitmaps are assigned to the template's photo slots and injected into the
// scene graph as clipped image nodes.
package photos

import (
	"context"
	"fmt"

	"github.com/user/photoprint/pkg/pipeline"
	"github.com/user/photoprint/pkg/ports"
	"github.com/user/photoprint/pkg/scene"
)

// Stage assigns photos to slots and mutates the scene in place.
type Stage struct {
	normalizer ports.Normalizer
	sink       ports.DebugSink
	logger     ports.Logger
}

// NewStage creates a new photos stage.
func NewStage(normalizer ports.Normalizer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		normalizer: normalizer,
		sink:       sink,
		logger:     logger.WithComponent("photos"),
	}
}

// Execute injects one clipped image node per slot. Re-running on the same
// scene first removes previously injected nodes, so repeated renders do not
// stack images.
func (s *Stage) Execute(ctx context.Context, input pipeline.PhotosInput) (pipeline.PhotosResult, error) {
	result := pipeline.PhotosResult{}

	input.Scene.RemoveByAttr("data-slot")

	if len(input.Images) == 0 {
		return result, nil
	}

	needsRotation := anySlotRotated(input.Slots)
	result.Rotated = needsRotation

	var clean, rotated [][]byte
	switch input.Mode {
	case pipeline.AssignMulti:
		s.logger.Debug("Cleaning %d source images", len(input.Images))
		clean = make([][]byte, len(input.Images))
		for i, data := range input.Images {
			c, err := s.normalizer.Clean(ctx, data)
			if err != nil {
				return result, fmt.Errorf("clean image %d: %w", i, err)
			}
			clean[i] = c
		}
		// Rotation is decided once for the whole set: every slot in a
		// polaroid family shares orientation.
		if needsRotation {
			s.logger.Debug("Rotating images for landscape slots")
			rotated = make([][]byte, len(clean))
			for i, data := range clean {
				r, err := s.normalizer.RotateCW90(ctx, data)
				if err != nil {
					return result, fmt.Errorf("rotate image %d: %w", i, err)
				}
				rotated[i] = r
			}
		}
	default: // AssignSingle
		selected := input.Selected
		if selected < 0 || selected >= len(input.Images) {
			return result, fmt.Errorf("selected image %d out of range", selected)
		}
		c, err := s.normalizer.Clean(ctx, input.Images[selected])
		if err != nil {
			return result, fmt.Errorf("clean image %d: %w", selected, err)
		}
		clean = [][]byte{c}
		if needsRotation {
			r, err := s.normalizer.RotateCW90(ctx, c)
			if err != nil {
				return result, fmt.Errorf("rotate image %d: %w", selected, err)
			}
			rotated = [][]byte{r}
		}
	}

	for idx, slot := range input.Slots {
		var data []byte
		var imageIndex int
		if input.Mode == pipeline.AssignMulti {
			// Once images run out the last one is reused for the
			// remaining slots.
			imageIndex = idx
			if imageIndex > len(clean)-1 {
				imageIndex = len(clean) - 1
			}
		}
		if slot.NeedsRotation() && rotated != nil {
			data = rotated[imageIndex]
			s.logger.Debug("Slot %d: photo %d (rotated)", idx, imageIndex+1)
		} else {
			data = clean[imageIndex]
			s.logger.Debug("Slot %d: photo %d", idx, imageIndex+1)
		}

		s.inject(input.Scene, slot, idx, data)
		result.Injected++

		if s.sink.Enabled() {
			s.sink.SaveBitmap(idx, data)
		}
	}

	if s.sink.Enabled() {
		if data, err := input.Scene.Serialize(); err == nil {
			s.sink.SaveScene("photos", data)
		}
	}

	s.logger.Debug("Injected %d photos", result.Injected)
	return result, nil
}

// inject adds a cover-scaled clipped image node positioned over the slot's
// bounding box. Cover semantics (xMidYMid slice) fill the box and center-crop
// the overflow; photos are never letterboxed.
func (s *Stage) inject(sc *scene.Scene, slot scene.PhotoSlot, idx int, data []byte) {
	img := sc.Root().CreateElement("image")
	scene.SetImageHref(img, scene.DataURL("image/png", data))
	img.CreateAttr("clip-path", fmt.Sprintf("url(#%s)", slot.ClipID))
	img.CreateAttr("preserveAspectRatio", "xMidYMid slice")
	img.CreateAttr("data-slot", fmt.Sprintf("%d", idx))
	img.CreateAttr("x", scene.Ftoa(slot.BBox.X))
	img.CreateAttr("y", scene.Ftoa(slot.BBox.Y))
	img.CreateAttr("width", scene.Ftoa(slot.BBox.Width))
	img.CreateAttr("height", scene.Ftoa(slot.BBox.Height))
}

func anySlotRotated(slots []scene.PhotoSlot) bool {
	for _, slot := range slots {
		if slot.NeedsRotation() {
			return true
		}
	}
	return false
}
