package app

import (
	"context"
	"fmt"
	"image"

	"github.com/planner-app/launchericons/internal/density"
	"github.com/planner-app/launchericons/internal/icon"
	"github.com/planner-app/launchericons/internal/output"
	"github.com/planner-app/launchericons/internal/preview"
)

// Generator renders and saves the launcher icons for a set of densities.
type Generator struct {
	Densities []density.Density
	Writer    *output.Writer
	Logger    Logger

	// PreviewPath, when set, receives a contact sheet of every icon written.
	PreviewPath string
	// FramebufferDevice, when set, shows the contact sheet on that device.
	FramebufferDevice string
}

// Result lists the files written, two per density in table order.
type Result struct {
	Files   []string
	Preview image.Image
}

func New(densities []density.Density, writer *output.Writer) *Generator {
	return &Generator{Densities: densities, Writer: writer, Logger: NoopLogger{}}
}

// Run processes densities one at a time. The first failure stops the run and
// is returned; files written before it are left in place.
func (g *Generator) Run(ctx context.Context) (Result, error) {
	if g.Logger == nil {
		g.Logger = NoopLogger{}
	}
	if g.Writer == nil {
		return Result{}, fmt.Errorf("generator: no writer configured")
	}

	var res Result
	var entries []preview.Entry
	wantSheet := g.PreviewPath != "" || g.FramebufferDevice != ""

	for _, d := range g.Densities {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		square, err := icon.DrawSquare(d.Size)
		if err != nil {
			return res, fmt.Errorf("%s %s: %w", d.Name, output.Square, err)
		}
		path, err := g.Writer.Write(d, output.Square, square)
		if err != nil {
			g.Logger.Errorf("generate", "%s square: %v", d.Name, err)
			return res, fmt.Errorf("%s %s: %w", d.Name, output.Square, err)
		}
		res.Files = append(res.Files, path)
		g.Logger.Infof("generate", "wrote %s (%dx%d)", path, d.Size, d.Size)

		round, err := icon.DrawRound(d.Size)
		if err != nil {
			return res, fmt.Errorf("%s %s: %w", d.Name, output.Round, err)
		}
		path, err = g.Writer.Write(d, output.Round, round)
		if err != nil {
			g.Logger.Errorf("generate", "%s round: %v", d.Name, err)
			return res, fmt.Errorf("%s %s: %w", d.Name, output.Round, err)
		}
		res.Files = append(res.Files, path)
		g.Logger.Infof("generate", "wrote %s (%dx%d)", path, d.Size, d.Size)

		if wantSheet {
			entries = append(entries, preview.Entry{Name: d.Name, Square: square, Round: round})
		}
	}

	if !wantSheet {
		return res, nil
	}
	if _, err := preview.LabelFace(); err != nil {
		g.Logger.Errorf("preview", "using basicfont: %v", err)
	}
	sheet := preview.Sheet(entries)
	res.Preview = sheet
	if g.PreviewPath != "" {
		if err := preview.SavePNG(g.PreviewPath, sheet); err != nil {
			return res, fmt.Errorf("preview: %w", err)
		}
		g.Logger.Infof("preview", "wrote %s", g.PreviewPath)
	}
	if g.FramebufferDevice != "" {
		if err := preview.Display(g.FramebufferDevice, sheet); err != nil {
			return res, fmt.Errorf("preview display: %w", err)
		}
		g.Logger.Infof("preview", "shown on %s", g.FramebufferDevice)
	}
	return res, nil
}
