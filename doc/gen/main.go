// Command gen renders the debug menu in a few typical states, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/debugmenu"
	"github.com/go-theft-auto/debugmenu/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single menu screenshot to capture.
type screenshot struct {
	name    string                  // filename without extension
	width   int                     // viewport width
	height  int                     // viewport height
	style   func() debugmenu.Style  // nil means DefaultStyle
	align   debugmenu.Align         // panel edge
	actions []debugmenu.Action      // performed after the menu opens
	setup   func(m *debugmenu.Menu) // runs after actions, optional
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
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("menu renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection. GLFW resizes windows
	// asynchronously; the hidden window stays at 800x600, larger than every
	// screenshot.
	renderer.Resize(s.width, s.height)

	style := debugmenu.DefaultStyle()
	if s.style != nil {
		style = s.style()
	}

	// Fresh menu per screenshot to avoid state leaking between captures.
	menu, err := debugmenu.New(
		debugmenu.WithStyle(style),
		debugmenu.WithAlign(s.align),
		debugmenu.WithScreenSize(debugmenu.Vec2{X: float32(s.width), Y: float32(s.height)}),
	)
	if err != nil {
		return err
	}
	if err := buildSampleTree(menu); err != nil {
		return err
	}
	menu.Open()
	for _, a := range s.actions {
		menu.Do(a)
	}
	if s.setup != nil {
		s.setup(menu)
	}

	dl := debugmenu.AcquireDrawList()
	defer debugmenu.ReleaseDrawList(dl)
	mr := debugmenu.NewDrawListRenderer(dl, renderer.FontTextureID())

	// Large steps settle every animation in two frames.
	for range 2 {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		menu.Update(1)
		dl.Clear()
		menu.Draw(mr)
		if err := renderer.Render(dl); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// sampleState is the state the screenshot tree edits.
type sampleState struct {
	godMode, infAmmo, fog bool
	quality, wanted       int
	fov                   float32
}

func buildSampleTree(m *debugmenu.Menu) error {
	sample := new(sampleState)
	for _, err := range []error{
		second(m.CreateBoolItem(debugmenu.Handle{}, "Cheats/God Mode", "Player takes no damage.", &sample.godMode)),
		second(m.CreateBoolItem(debugmenu.Handle{}, "Cheats/Infinite Ammo", "Weapons never run dry.", &sample.infAmmo)),
		second(m.CreateArrayItem(debugmenu.Handle{}, "Cheats/Wanted Level", "Police attention, in stars.",
			[]string{"0", "1", "2", "3", "4", "5"}, debugmenu.ArrayValues([]int{0, 1, 2, 3, 4, 5}, &sample.wanted))),
		second(m.CreatePresetItem(debugmenu.Handle{}, "Cheats/Teleport", "Move the player to a landmark.",
			[]string{"Safehouse", "Airport", "Docks"}, func(int) {})),
		second(m.CreateArrayItem(debugmenu.Handle{}, "Render/Quality", "Overall render quality preset.",
			[]string{"Low", "Medium", "High", "Ultra"}, debugmenu.ArrayValues([]int{0, 1, 2, 3}, &sample.quality),
			debugmenu.WithDefaultIndex(2))),
		second(m.CreateArrayItem(debugmenu.Handle{}, "Render/Camera/FOV", "Vertical field of view in degrees.",
			[]string{"60", "75", "90", "110"}, debugmenu.ArrayValues([]float32{60, 75, 90, 110}, &sample.fov),
			debugmenu.WithDefaultIndex(1))),
		second(m.CreateBoolItem(debugmenu.Handle{}, "Render/Fog", "", &sample.fog)),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

func second[T any](_ T, err error) error { return err }

// buildScreenshots returns the list of all menu screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name:   "menu_root",
			width:  480,
			height: 320,
		},
		{
			name:    "menu_folder",
			width:   480,
			height:  320,
			actions: []debugmenu.Action{debugmenu.ActionInto, debugmenu.ActionNext},
		},
		{
			name:   "menu_editing",
			width:  480,
			height: 320,
			actions: []debugmenu.Action{
				debugmenu.ActionInto, debugmenu.ActionNext, debugmenu.ActionNext,
				debugmenu.ActionInto, debugmenu.ActionValueNext, debugmenu.ActionValueNext,
			},
		},
		{
			name:   "menu_filter",
			width:  480,
			height: 320,
			setup:  func(m *debugmenu.Menu) { m.SetFilter("fov") },
		},
		{
			name:    "menu_gta_right",
			width:   640,
			height:  360,
			style:   debugmenu.GTAStyle,
			align:   debugmenu.AlignRight,
			actions: []debugmenu.Action{debugmenu.ActionNext, debugmenu.ActionInto},
		},
	}
}
