package cmd

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/tair/virtual-tryon/internal/ar/asset"
	"github.com/tair/virtual-tryon/internal/ar/camera"
	"github.com/tair/virtual-tryon/internal/ar/effects"
	"github.com/tair/virtual-tryon/internal/ar/scene"
	"github.com/tair/virtual-tryon/internal/ar/tryon"
)

var previewOpts struct {
	product uint
	effect  string
	color   string
	frame   string
	out     string
	width   int
	height  int
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Run a headless try-on session and save a snapshot",
	Long: `preview places a product's model in a headless AR scene over a still
camera frame, applies an optional effect and colorway, and writes the
captured frame as JPEG.`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	f := previewCmd.Flags()
	f.UintVar(&previewOpts.product, "product", 1, "product id")
	f.StringVar(&previewOpts.effect, "effect", "", "effect id (sparkle, neon, rainbow, rotate_360, size_comparison, x_ray_view)")
	f.StringVar(&previewOpts.color, "color", "", "colorway (original, red, yellow, black, white, green, purple)")
	f.StringVar(&previewOpts.frame, "frame", "", "camera frame image (JPEG or PNG); a grey frame is used when empty")
	f.StringVar(&previewOpts.out, "out", "snapshot.jpg", "output file")
	f.IntVar(&previewOpts.width, "width", 390, "viewport width")
	f.IntVar(&previewOpts.height, "height", 844, "viewport height")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	fetcher, err := asset.FromConfig(cfg)
	if err != nil {
		return err
	}

	var frame image.Image
	if previewOpts.frame != "" {
		if frame, err = readImage(previewOpts.frame); err != nil {
			return err
		}
	}

	be, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer be.close()

	viewport := scene.Size{Width: previewOpts.width, Height: previewOpts.height}
	session, _ := tryon.NewHeadlessSession(camera.NewStillDevice(frame), fetcher, be.catalog, viewport, nil)
	defer session.Close()

	granted, err := session.Start(ctx)
	if err != nil {
		return err
	}
	if !granted {
		return errors.New("camera not available")
	}

	if err := session.SelectProduct(ctx, previewOpts.product); err != nil {
		return err
	}
	if previewOpts.effect != "" {
		session.SelectEffect(effects.Effect(previewOpts.effect))
	}
	if previewOpts.color != "" {
		session.SelectColor(effects.Color(previewOpts.color))
	}

	snap, err := session.Capture(ctx)
	if err != nil {
		return err
	}
	if snap == nil {
		return errors.New("no camera frame available")
	}
	if err := os.WriteFile(previewOpts.out, snap.JPEG, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	state := session.State()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (effect=%q color=%s) -> %s [%dx%d]\n",
		state.Product.Name, state.Status, state.Effect, state.ColorHex, previewOpts.out, snap.Width, snap.Height)
	return nil
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frame: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}
	return img, nil
}
