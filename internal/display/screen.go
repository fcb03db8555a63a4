// Package display detects the screen size the backdrop is rendered for.
package display

import (
	"image"

	"github.com/genricoloni/vudia/internal/domain"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

var (
	fallback = domain.ScreenResolution{Width: 1920, Height: 1080}
	maxSize  = domain.ScreenResolution{Width: 3840, Height: 2160}
)

// NewScreenResolution detects the primary screen resolution at startup
func NewScreenResolution(logger *zap.Logger) *domain.ScreenResolution {
	return detect(logger, screenshot.NumActiveDisplays, screenshot.GetDisplayBounds)
}

func detect(logger *zap.Logger, count func() int, bounds func(int) image.Rectangle) *domain.ScreenResolution {
	n := count()
	if n <= 0 {
		logger.Warn("No active displays detected, using fallback resolution",
			zap.Int("width", fallback.Width),
			zap.Int("height", fallback.Height))
		res := fallback
		return &res
	}

	b := bounds(0)
	res := clamp(domain.ScreenResolution{Width: b.Dx(), Height: b.Dy()})

	logger.Info("Screen resolution detected",
		zap.Int("displays", n),
		zap.Int("width", res.Width),
		zap.Int("height", res.Height))

	return &res
}

// clamp scales res down to fit maxSize, keeping the aspect ratio
func clamp(res domain.ScreenResolution) domain.ScreenResolution {
	if res.Width <= 0 || res.Height <= 0 {
		return fallback
	}
	if res.Width <= maxSize.Width && res.Height <= maxSize.Height {
		return res
	}

	scaleW := float64(maxSize.Width) / float64(res.Width)
	scaleH := float64(maxSize.Height) / float64(res.Height)
	scale := min(scaleW, scaleH)

	return domain.ScreenResolution{
		Width:  int(float64(res.Width) * scale),
		Height: int(float64(res.Height) * scale),
	}
}
