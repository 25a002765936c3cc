package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-scaryeyes/internal/config"
	"github.com/coreman2200/funtimes-scaryeyes/internal/display"
	"github.com/coreman2200/funtimes-scaryeyes/internal/preview"
	"github.com/coreman2200/funtimes-scaryeyes/internal/show"
)

func main() {
	// ---- Flags (remain usable; config.yaml can override most) ----
	var (
		width       = flag.Int("width", 16, "display width in pixels (multiple of 8)")
		height      = flag.Int("height", 8, "display height in pixels (multiple of 8)")
		driver      = flag.String("driver", "max7219", "driver: max7219 | ssd1306 | term")
		orientation = flag.Int("block-orientation", 0, "per-block rotation: 0, 90, 180, 270")
		contrast    = flag.Int("contrast", 30, "initial contrast 0..255")
		tickMs      = flag.Int("tick-ms", 100, "animation tick in milliseconds")
		spiDev      = flag.String("spi-dev", "", "SPI port name (empty = first available)")
		i2cDev      = flag.String("i2c-dev", "", "I2C bus name (empty = first available)")
		addr        = flag.String("addr", ":8080", "preview HTTP listen address")
		withPreview = flag.Bool("preview", false, "serve frames over websocket")
		seed        = flag.Int64("seed", 0, "random seed (0 = from clock)")
		configPath  = flag.String("config", "config.yaml", "path to config.yaml")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Load config.yaml (optional) ----
	var cfg *config.Config
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		cfg = c
	}

	// ---- Effective params (config overrides flags where set) ----
	eWidth, eHeight := *width, *height
	eDriver := *driver
	eOrient, eContrast := *orientation, *contrast
	eTick := *tickMs
	eSPIDev, eI2CDev := *spiDev, *i2cDev
	eSPIHz := 0
	eAddr, ePreview := *addr, *withPreview
	eSeed := *seed

	if cfg != nil {
		if cfg.Width > 0 {
			eWidth = cfg.Width
		}
		if cfg.Height > 0 {
			eHeight = cfg.Height
		}
		if cfg.Driver != "" {
			eDriver = cfg.Driver
		}
		if cfg.Orientation != 0 {
			eOrient = cfg.Orientation
		}
		if cfg.Contrast > 0 {
			eContrast = cfg.Contrast
		}
		if cfg.TickMs > 0 {
			eTick = cfg.TickMs
		}
		if cfg.SPI.Dev != "" {
			eSPIDev = cfg.SPI.Dev
		}
		if cfg.SPI.SpeedHz > 0 {
			eSPIHz = cfg.SPI.SpeedHz
		}
		if cfg.I2C.Dev != "" {
			eI2CDev = cfg.I2C.Dev
		}
		if cfg.Preview.Enabled {
			ePreview = true
		}
		if cfg.Preview.Addr != "" {
			eAddr = cfg.Preview.Addr
		}
		if cfg.Seed != 0 {
			eSeed = cfg.Seed
		}
	}

	// ---- Hardware host ----
	if _, err := host.Init(); err != nil {
		log.Fatal().Err(err).Msg("periph host init failed")
	}

	// ---- Driver selection, falling back to the terminal ----
	var renderer display.Renderer
	switch eDriver {
	case "max7219":
		port, err := spireg.Open(eSPIDev)
		if err != nil {
			log.Warn().Err(err).Str("dev", eSPIDev).Msg("no SPI port; printing at the console")
			renderer = display.NewTerm(eWidth, eHeight)
			break
		}
		d, err := display.NewMAX7219(port, eWidth, eHeight, eOrient, physic.Frequency(eSPIHz)*physic.Hertz)
		if err != nil {
			log.Warn().Err(err).Msg("max7219 init failed; printing at the console")
			renderer = display.NewTerm(eWidth, eHeight)
			break
		}
		renderer = d

	case "ssd1306":
		bus, err := i2creg.Open(eI2CDev)
		if err != nil {
			log.Warn().Err(err).Str("dev", eI2CDev).Msg("no I2C bus; printing at the console")
			renderer = display.NewTerm(eWidth, eHeight)
			break
		}
		d, err := display.NewOLED(bus, eWidth, eHeight)
		if err != nil {
			log.Warn().Err(err).Msg("ssd1306 init failed; printing at the console")
			renderer = display.NewTerm(eWidth, eHeight)
			break
		}
		renderer = d

	case "term":
		renderer = display.NewTerm(eWidth, eHeight)

	default:
		log.Warn().Str("driver", eDriver).Msg("unknown driver; printing at the console")
		renderer = display.NewTerm(eWidth, eHeight)
	}

	// ---- Optional websocket preview ----
	if ePreview {
		srv := preview.NewServer(eWidth, eHeight, log.With().Str("component", "preview").Logger())
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", srv.HandleWS)
		mux.HandleFunc("/health", srv.HandleHealth)
		httpSrv := &http.Server{
			Addr:         eAddr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		go func() {
			log.Info().Str("addr", eAddr).Msg("preview server starting")
			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatal().Err(err).Msg("preview server crashed")
			}
		}()
		defer httpSrv.Close()
		renderer = display.Tee{renderer, srv}
	}

	if eContrast < 0 {
		eContrast = 0
	}
	if eContrast > 255 {
		eContrast = 255
	}
	if err := renderer.SetContrast(uint8(eContrast)); err != nil {
		log.Warn().Err(err).Msg("setting initial contrast failed")
	}

	// ---- Run the show until a signal or a display fault ----
	s := show.New(show.Options{
		Renderer: renderer,
		Tick:     time.Duration(eTick) * time.Millisecond,
		Seed:     eSeed,
		Logger:   log.With().Str("component", "show").Logger(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sg := <-sig:
		log.Info().Str("signal", sg.String()).Msg("shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("show stopped")
		}
	}

	if err := renderer.Close(); err != nil {
		log.Warn().Err(err).Msg("closing display failed")
	}
}
