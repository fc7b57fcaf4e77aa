// Command gallery opens a window with a scrollable image gallery described by
// a JSON manifest. Scroll with the mouse wheel; Q or Escape quits, F11
// toggles fullscreen.
//
//	gallery -assets ./assets -manifest data.json
//	gallery ./photos
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/gallery"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	assetsDir := flag.String("assets", "assets", "Directory containing the manifest and images")
	manifestName := flag.String("manifest", "data.json", "Manifest file, relative to -assets")
	width := flag.Int("width", 1280, "Initial window width")
	height := flag.Int("height", 800, "Initial window height")
	title := flag.String("title", "Gallery", "Window title")
	tps := flag.Int("tps", 0, "Ticks per second (0 = default 60, -1 = sync with frame rate)")
	showFPS := flag.Bool("fps", false, "Show FPS/TPS readout")
	debug := flag.Bool("debug", false, "Log timing and load stats to stderr")
	fontSize := flag.Float64("font-size", 18, "Title font size in points")
	scriptPath := flag.String("script", "", "JSON test script to run (exits when done)")
	screenshotDir := flag.String("screenshots", "screenshots", "Directory for screenshots taken by -script")
	flag.Parse()

	// The asset directory may also be given as the first positional argument.
	assetsSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "assets" {
			assetsSet = true
		}
	})
	if !assetsSet && flag.NArg() > 0 {
		*assetsDir = flag.Arg(0)
	}

	assets := os.DirFS(*assetsDir)
	manifest, err := gallery.LoadManifest(assets, *manifestName)
	if err != nil {
		log.Fatalf("Failed to load manifest: %v", err)
	}

	labels, err := gallery.NewTitleList(goregular.TTF, *fontSize)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	scene, err := gallery.NewScene(manifest, assets, gallery.DefaultConfig(), labels)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}
	scene.SetDebugMode(*debug)
	scene.ScreenshotDir = *screenshotDir

	var runner *gallery.TestRunner
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to read script: %v", err)
		}
		runner, err = gallery.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		scene.SetTestRunner(runner)
	}

	if err := gallery.Run(scene, gallery.RunConfig{
		Title:              *title,
		Width:              *width,
		Height:             *height,
		TPS:                *tps,
		ShowFPS:            *showFPS,
		ExitWhenScriptDone: runner != nil,
	}); err != nil {
		log.Fatal(err)
	}
}
