// Package raster implements the final rasterization stage.
package raster

import (
	"context"
	"fmt"

	"github.com/user/photoprint/pkg/pipeline"
	"github.com/user/photoprint/pkg/ports"
)

// Stage renders the composed scene to a bitmap at the template's output size.
type Stage struct {
	rasterizer ports.VectorRasterizer
	sink       ports.DebugSink
	logger     ports.Logger
}

// NewStage creates a raster stage.
func NewStage(rasterizer ports.VectorRasterizer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		rasterizer: rasterizer,
		sink:       sink,
		logger:     logger.WithComponent("raster"),
	}
}

// Execute serializes the scene and rasterizes it to Width x Height pixels.
func (s *Stage) Execute(ctx context.Context, input pipeline.RasterInput) (pipeline.RasterResult, error) {
	s.logger.Debug("Rasterizing %dx%d", input.Width, input.Height)

	svg, err := input.Scene.Serialize()
	if err != nil {
		return pipeline.RasterResult{}, err
	}

	img, err := s.rasterizer.Rasterize(ctx, svg, input.Width, input.Height)
	if err != nil {
		return pipeline.RasterResult{}, fmt.Errorf("rasterize scene: %w", err)
	}

	if s.sink.Enabled() {
		if err := s.sink.SaveRaster(img); err != nil {
			s.logger.Warn("Failed to save raster: %v", err)
		}
	}

	s.logger.Info("Rasterized %dx%d", input.Width, input.Height)
	return pipeline.RasterResult{Image: img}, nil
}
