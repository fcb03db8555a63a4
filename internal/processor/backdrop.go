package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG format support
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/vudia/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultBlurRadius = 15.0
	defaultDimming    = -25.0 // Brightness shift applied to the blurred layer
	coverHeightRatio  = 0.40  // Cover size as percentage of screen height
	thumbnailSize     = 256
)

// Options holds configuration for backdrop rendering
type Options struct {
	BlurRadius       float64
	Dimming          float64 // Percentage passed to imaging.AdjustBrightness
	CoverSizePercent float64 // Cover size as percentage of screen height (0.0-1.0)
}

// BackdropProcessor renders a blurred full-screen backdrop with the sharp cover centered on it
type BackdropProcessor struct {
	logger *zap.Logger
	res    *domain.ScreenResolution
	opts   Options
	appCfg domain.Config
}

// NewBackdropProcessor creates a processor sized to the detected screen
func NewBackdropProcessor(logger *zap.Logger, res *domain.ScreenResolution, appCfg domain.Config) *BackdropProcessor {
	return &BackdropProcessor{
		logger: logger,
		res:    res,
		appCfg: appCfg,
		opts: Options{
			BlurRadius:       defaultBlurRadius,
			Dimming:          defaultDimming,
			CoverSizePercent: coverHeightRatio,
		},
	}
}

// Render composes the backdrop in memory and returns it JPEG-encoded
func (p *BackdropProcessor) Render(ctx context.Context, imageData []byte) ([]byte, error) {
	img, err := decode(imageData)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()

	p.logger.Debug("Rendering backdrop", zap.Int("w", p.res.Width), zap.Int("h", p.res.Height))
	background := imaging.Fill(img, p.res.Width, p.res.Height, imaging.Center, imaging.Lanczos)
	background = imaging.Blur(background, p.opts.BlurRadius)
	background = imaging.AdjustBrightness(background, p.opts.Dimming)

	coverHeight := int(float64(p.res.Height) * p.opts.CoverSizePercent)
	coverWidth := coverHeight * bounds.Dx() / bounds.Dy()
	cover := imaging.Resize(img, coverWidth, coverHeight, imaging.Lanczos)

	centerX := (p.res.Width - coverWidth) / 2
	centerY := (p.res.Height - coverHeight) / 2
	result := imaging.Paste(background, cover, image.Pt(centerX, centerY))

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, result, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("failed to encode backdrop: %w", err)
	}

	p.logger.Debug("Backdrop rendered", zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

// Generate renders the backdrop and thumbnail for the named track and saves both to disk
func (p *BackdropProcessor) Generate(imgData []byte, name string) (domain.Artwork, error) {
	backdrop, err := p.Render(context.Background(), imgData)
	if err != nil {
		return domain.Artwork{}, fmt.Errorf("failed to render backdrop: %w", err)
	}

	img, err := decode(imgData)
	if err != nil {
		return domain.Artwork{}, err
	}

	outputDir := p.appCfg.GetOutputDir()
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return domain.Artwork{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	backdropPath := filepath.Join(outputDir, "backdrop-"+name+".jpg")
	if err := os.WriteFile(backdropPath, backdrop, 0o644); err != nil {
		return domain.Artwork{}, fmt.Errorf("failed to write backdrop: %w", err)
	}

	thumbPath := filepath.Join(outputDir, "cover-"+name+".png")
	thumb := imaging.Fill(img, thumbnailSize, thumbnailSize, imaging.Center, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return domain.Artwork{}, fmt.Errorf("failed to write thumbnail: %w", err)
	}

	p.logger.Info("Artwork generated",
		zap.String("backdrop", backdropPath),
		zap.String("thumbnail", thumbPath),
		zap.Int("size", len(backdrop)))

	return domain.Artwork{
		Backdrop:  absOr(backdropPath),
		Thumbnail: absOr(thumbPath),
	}, nil
}

func decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", b.Dx(), b.Dy())
	}
	return img, nil
}

func absOr(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
