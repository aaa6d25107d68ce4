package main

import (
	"fmt"
	"image"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"quanta/config"
	"quanta/sim"
	"quanta/telemetry"
)

// runViewer drives the runner inside a raylib window, uploading each
// generation's grayscale frame as a texture. Only runners over
// two-dimensional lattices can be viewed; everything else must run headless.
func runViewer(runner sim.Runner, out *telemetry.OutputManager, cfg *config.Config, opts runOptions) error {
	framer, ok := runner.(sim.Framer)
	if !ok {
		return fmt.Errorf("rule %q cannot render frames; run with -headless", runner.Name())
	}
	frame, err := framer.Frame()
	if err != nil {
		return fmt.Errorf("rule %q is not viewable: %w; run with -headless", runner.Name(), err)
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "quanta")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	bounds := frame.Bounds()
	gridW, gridH := bounds.Dx(), bounds.Dy()
	pixels := make([]color.RGBA, gridW*gridH)

	img := rl.GenImageColor(gridW, gridH, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	uploadFrame(texture, frame, pixels)

	paused := false
	stepsPerFrame := float32(1)
	done := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}

		if !paused && !done {
			for i := 0; i < int(stepsPerFrame); i++ {
				if int(runner.Generation()) >= opts.generations {
					done = true
					break
				}
				if err := runner.Step(); err != nil {
					return err
				}
				if err := afterStep(runner, out, opts); err != nil {
					return err
				}
			}
			frame, err = framer.Frame()
			if err != nil {
				return err
			}
			uploadFrame(texture, frame, pixels)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		// Letterbox the grid into the window, preserving aspect.
		side := float32(min(cfg.Screen.Width, cfg.Screen.Height)) - 20
		dest := rl.Rectangle{
			X:      (float32(cfg.Screen.Width) - side) / 2,
			Y:      (float32(cfg.Screen.Height) - side) / 2,
			Width:  side,
			Height: side,
		}
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(gridW), Height: float32(gridH)},
			dest,
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)

		rl.DrawText(fmt.Sprintf("%s  gen %d / %d", runner.Name(), uint64(runner.Generation()), opts.generations),
			10, 10, 18, rl.RayWhite)

		if gui.Button(rl.Rectangle{X: 10, Y: 40, Width: 90, Height: 26}, pauseLabel(paused)) {
			paused = !paused
		}
		stepsPerFrame = gui.SliderBar(
			rl.Rectangle{X: 110, Y: 40, Width: 140, Height: 26},
			"", fmt.Sprintf("%dx", int(stepsPerFrame)),
			stepsPerFrame, 1, 32,
		)

		if done {
			rl.DrawText("finished", 10, 72, 18, rl.Gray)
		}

		rl.EndDrawing()
	}
	return nil
}

func pauseLabel(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}

// uploadFrame converts a grayscale frame to RGBA and updates the texture in
// place.
func uploadFrame(texture rl.Texture2D, frame *image.Gray, pixels []color.RGBA) {
	bounds := frame.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := frame.GrayAt(x, y).Y
			pixels[i] = color.RGBA{R: v, G: v, B: v, A: 255}
			i++
		}
	}
	rl.UpdateTexture(texture, pixels)
}
