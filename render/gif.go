package render

import (
	"fmt"
	"image"
	"image/gif"
	"os"
	"time"

	"github.com/samuelfneumann/progressbar"
	ximagedraw "golang.org/x/image/draw"

	"github.com/samuelfneumann/ips/rules"
)

// GIF renders record (a flattened sequence of width*height-wide
// snapshots) as an animated GIF, one frame per recorded snapshot, row-
// major within each frame. Best suited to 2-D graphs (grids, tori,
// diluted lattices).
//
// Each frame is drawn at full color into an *image.RGBA and quantized
// into the rule set's exact palette with golang.org/x/image/draw's
// Floyd-Steinberg drawer; because every pixel's color is already a
// member of the target palette, no visible dithering error is
// introduced. Progress is reported with
// github.com/samuelfneumann/progressbar, kept out of the solver
// itself, which has no side effects besides consuming entropy.
func GIF(record []rules.State, width, height int, r rules.RuleSet, msPerFrame int, path string) error {
	n := width * height
	if n <= 0 || len(record)%n != 0 {
		return fmt.Errorf("%w: len(record)=%d, width*height=%d", ErrRecordNotDivisible, len(record), n)
	}
	frameCount := len(record) / n
	pal := ForRuleSet(r)
	palette := pal.Colors()

	out := &gif.GIF{LoopCount: 1}
	bar := progressbar.New(40, frameCount, 200*time.Millisecond, false)
	bar.Display()

	delay := msPerFrame / 10 // image/gif.Delay is in hundredths of a second
	if delay < 1 {
		delay = 1
	}

	for f := 0; f < frameCount; f++ {
		rgba := image.NewRGBA(image.Rect(0, 0, width, height))
		base := f * n
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				state := record[base+x+width*y]
				rgba.Set(x, y, pal.Color(state))
			}
		}

		paletted := image.NewPaletted(rgba.Bounds(), palette)
		ximagedraw.FloydSteinberg.Draw(paletted, rgba.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
		out.Disposal = append(out.Disposal, gif.DisposalNone)

		bar.Increment()
		bar.Display()
	}

	bar.AddMessage(fmt.Sprintf("encoded %d frames", frameCount))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer file.Close()

	if err := gif.EncodeAll(file, out); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
