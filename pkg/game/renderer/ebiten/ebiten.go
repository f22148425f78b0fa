package ebiten

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"riftrewind/pkg/engine/geom"
	"riftrewind/pkg/game/gameplay"
	"riftrewind/pkg/game/i18n"
	"riftrewind/pkg/game/story"
	"riftrewind/pkg/game/zones"
)

// New creates the map window for opts.Data.
func New(opts Options) *EbitenRenderer {
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.Title == "" {
		opts.Title = i18n.T("APP_TITLE")
	}
	if opts.Layout == nil {
		opts.Layout = zones.DefaultLayout()
	}

	return &EbitenRenderer{
		windowWidth:  opts.Width,
		windowHeight: opts.Height,
		screenWidth:  opts.Width,
		screenHeight: opts.Height,
		opts:         opts,
		data:         opts.Data,
		refreshChan:  make(chan refreshResult, 1),
		now:          time.Now,
	}
}

// Run opens the window and blocks until it is closed or the user goes back.
func (e *EbitenRenderer) Run() (Outcome, error) {
	e.loadFonts()
	e.startImageLoad()

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(e.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)
	if e.refreshCancel != nil {
		e.refreshCancel()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return OutcomeQuit, fmt.Errorf("run map window: %w", err)
	}
	return e.outcome, nil
}

// Layout follows the window size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.screenWidth, e.screenHeight = outsideWidth, outsideHeight
	if e.session != nil {
		e.session.SetViewport(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// startImageLoad decodes the background in a goroutine; Update picks up
// the result.
func (e *EbitenRenderer) startImageLoad() {
	e.imageChan = make(chan mapImageResult, 1)
	e.loadStarted = e.now()
	path := e.opts.MapImage
	go func() {
		if path == "" {
			e.imageChan <- mapImageResult{}
			return
		}
		img, err := decodeImage(path)
		e.imageChan <- mapImageResult{img: img, err: err}
	}()
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// pollImageLoad builds the session once the background is ready. Must run
// on the game loop since it creates Ebiten images.
func (e *EbitenRenderer) pollImageLoad() {
	select {
	case res := <-e.imageChan:
		if res.err != nil {
			log.Printf("Map image unavailable, using generated map: %v", res.err)
			e.AddCallout(i18n.T("MAP_IMAGE_FALLBACK"), ColorCalloutInfo, calloutDuration)
		}
		if res.img != nil && !imageSize(res.img.Bounds()).Empty() {
			e.mapImage = ebiten.NewImageFromImage(res.img)
		} else {
			e.mapImage = generateMapImage(defaultMapSize)
		}
		b := e.mapImage.Bounds()
		log.Printf("Map loaded (%dx%d) in %s", b.Dx(), b.Dy(), e.now().Sub(e.loadStarted).Round(time.Millisecond))
		e.startSession(imageSize(b))
	default:
	}
}

func imageSize(b image.Rectangle) geom.Size {
	return geom.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// startSession creates a fresh page session for the current data.
func (e *EbitenRenderer) startSession(size geom.Size) {
	s := gameplay.NewSession(e.data, e.opts.Layout, size)
	s.SetViewport(float64(e.screenWidth), float64(e.screenHeight))
	s.OnArrival = func(p geom.Point) {
		log.Printf("Character arrived at (%.0f, %.0f)", p.X, p.Y)
	}
	s.OnActivate = func(c story.Content) {
		s.AddMessage(c.Title)
	}
	e.session = s
}
