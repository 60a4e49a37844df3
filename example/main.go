// Example opens a GLFW window with a game-style debug menu on top of a
// cleared framebuffer.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Controls: F1 or gamepad Start toggles the menu, arrows/d-pad navigate,
// Enter/A edits and commits, Escape/B cancels, F3/Y filters, F5 copies the
// overrides to the clipboard and F6 pastes them. Overrides are saved to
// debugmenu.dmenu in the working directory on exit.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/debugmenu"
	"github.com/go-theft-auto/debugmenu/backend/opengl"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "debugmenu example"
	saveFile     = "debugmenu.dmenu"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// game is the state the menu edits.
type game struct {
	godMode    bool
	infAmmo    bool
	showFPS    bool
	quality    int
	fov        float32
	clearColor [3]float32
	timeScale  float32
	teleports  int
}

var palette = [][3]float32{
	{0.12, 0.12, 0.14},
	{0.05, 0.10, 0.25},
	{0.25, 0.08, 0.08},
	{0.40, 0.40, 0.40},
}

func buildMenu(m *debugmenu.Menu, g *game) error {
	var errs []error
	add := func(_ debugmenu.Handle, err error) { errs = append(errs, err) }

	add(m.CreateBoolItem(debugmenu.Handle{}, "Cheats/God Mode", "Player takes no damage.", &g.godMode))
	add(m.CreateBoolItem(debugmenu.Handle{}, "Cheats/Infinite Ammo", "Weapons never run dry.", &g.infAmmo))
	add(m.CreatePresetItem(debugmenu.Handle{}, "Cheats/Teleport", "Move the player to a landmark.",
		[]string{"Safehouse", "Airport", "Docks"},
		func(i int) {
			g.teleports++
			slog.Info("teleport", "landmark", i)
		}))
	add(m.CreateArrayItem(debugmenu.Handle{}, "Render/Quality", "Overall render quality preset.",
		[]string{"Low", "Medium", "High", "Ultra"}, debugmenu.ArrayValues([]int{0, 1, 2, 3}, &g.quality),
		debugmenu.WithDefaultIndex(2)))
	add(m.CreateArrayItem(debugmenu.Handle{}, "Render/Camera/FOV", "Vertical field of view in degrees.",
		[]string{"60", "75", "90", "110"}, debugmenu.ArrayValues([]float32{60, 75, 90, 110}, &g.fov),
		debugmenu.WithDefaultIndex(1)))
	add(m.CreateArrayItem(debugmenu.Handle{}, "Render/Clear Color", "Background color behind the menu.",
		[]string{"Charcoal", "Night", "Blood", "Fog"}, debugmenu.ArrayValues(palette, &g.clearColor)))
	add(m.CreateArrayItem(debugmenu.Handle{}, "Time/Scale", "Simulation speed multiplier.",
		[]string{"0.25x", "0.5x", "1x", "2x"}, debugmenu.ArrayValues([]float32{0.25, 0.5, 1, 2}, &g.timeScale),
		debugmenu.WithDefaultIndex(2),
		debugmenu.WithObserver(debugmenu.ObserverFunc(func(ev debugmenu.ChangeEvent) {
			if ev.Committed {
				slog.Info("time scale", "value", ev.Title)
			}
		}))))
	add(m.CreateBoolItem(debugmenu.Handle{}, "Show FPS", "", &g.showFPS))
	return errors.Join(errs...)
}

// streamAssets simulates a loader goroutine registering items as assets
// arrive. Items reach the menu when the main loop drains q.
func streamAssets(q *debugmenu.Queue, targets []bool, done <-chan struct{}) {
	for i := range targets {
		select {
		case <-done:
			return
		case <-time.After(750 * time.Millisecond):
		}
		req := debugmenu.CreateRequest{
			Kind:        debugmenu.RequestBool,
			Path:        fmt.Sprintf("Streaming/Asset %02d", i),
			Description: "Marks the asset as loaded.",
			Target:      &targets[i],
		}
		for q.Push(req) != nil {
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("menu renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	clipboard := opengl.Clipboard{Window: window}

	menu, err := debugmenu.New(
		debugmenu.WithStyle(debugmenu.GTAStyle()),
		debugmenu.WithScreenSize(debugmenu.Vec2{X: windowWidth, Y: windowHeight}),
		debugmenu.WithMenuSizeItem(true),
	)
	if err != nil {
		return fmt.Errorf("create menu: %w", err)
	}

	g := &game{}
	if err := buildMenu(menu, g); err != nil {
		return fmt.Errorf("build menu: %w", err)
	}
	if data, err := os.ReadFile(saveFile); err == nil {
		if n, err := menu.Load(data); err != nil {
			slog.Warn("ignoring saved overrides", "file", saveFile, "error", err)
		} else {
			slog.Info("loaded overrides", "file", saveFile, "count", n)
		}
	}

	queue := debugmenu.NewQueue(8)
	done := make(chan struct{})
	defer close(done)
	go streamAssets(queue, make([]bool, 12), done)

	dl := debugmenu.AcquireDrawList()
	defer debugmenu.ReleaseDrawList(dl)
	menuRenderer := debugmenu.NewDrawListRenderer(dl, renderer.FontTextureID())

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		in := input.Update(dt)
		if _, err := queue.Drain(menu); err != nil {
			slog.Warn("queued items failed", "error", err)
		}
		menu.HandleInput(in)
		handleClipboardKeys(window, menu, clipboard)

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		menu.Resize(debugmenu.Vec2{X: float32(w), Y: float32(h)})
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(g.clearColor[0], g.clearColor[1], g.clearColor[2], 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		menu.Update(dt)
		dl.Clear()
		menu.Draw(menuRenderer)
		if err := renderer.Render(dl); err != nil {
			return fmt.Errorf("menu render: %w", err)
		}

		window.SwapBuffers()
	}

	if err := os.WriteFile(saveFile, menu.AppendSave(nil), 0o644); err != nil {
		return fmt.Errorf("save overrides: %w", err)
	}
	return nil
}

var clipboardKeys [2]bool

// handleClipboardKeys copies on the F5 press edge and pastes on F6.
func handleClipboardKeys(window *glfw.Window, menu *debugmenu.Menu, cb opengl.Clipboard) {
	for i, key := range [2]glfw.Key{glfw.KeyF5, glfw.KeyF6} {
		down := window.GetKey(key) == glfw.Press
		pressed := down && !clipboardKeys[i]
		clipboardKeys[i] = down
		if !pressed {
			continue
		}
		if i == 0 {
			if err := menu.CopyOverrides(cb); err != nil {
				slog.Warn("copy failed", "error", err)
			}
			continue
		}
		n, err := menu.PasteOverrides(cb)
		if err != nil {
			slog.Warn("paste failed", "error", err)
			continue
		}
		slog.Info("pasted overrides", "count", n)
	}
}
