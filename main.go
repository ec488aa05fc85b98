package main

import (
	"flag"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"k8s.io/klog/v2"

	"github.com/ytget/meme-maker/internal/config"
	"github.com/ytget/meme-maker/internal/export"
	"github.com/ytget/meme-maker/internal/platform"
	"github.com/ytget/meme-maker/internal/project"
	"github.com/ytget/meme-maker/internal/render"
	"github.com/ytget/meme-maker/internal/session"
	"github.com/ytget/meme-maker/internal/thumbnail"
	"github.com/ytget/meme-maker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.meme-maker"
	AppName = "Meme Maker"

	// Decoded base images kept in memory across views
	ImageCacheSize = 64
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.Infof("%s v%s starting...", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetExportDirectory()); err != nil {
		klog.Warningf("failed to ensure export dir: %v", err)
	}

	source := settings.GetAssetSource()
	klog.V(1).Infof("loading images from %s", source)
	loader := render.NewCachingLoader(render.NewLoader(source), ImageCacheSize)

	engine := render.NewEngine(loader)
	thumbs := thumbnail.NewService(loader, thumbnail.DefaultWidth)
	sess := session.New(project.New())

	saver := &export.DirSaver{DirFunc: settings.GetExportDirectory}
	exportSvc := export.NewService(sess.Project(), engine, saver, export.WithDelay(settings.GetExportDelay()))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, sess, engine, exportSvc, thumbs)

	// Show and run
	myWindow.ShowAndRun()
}
