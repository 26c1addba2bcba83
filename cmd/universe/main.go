// Command universe renders black and white images from their ordinals.
//
// Every square black and white image of a given side is the binary expansion
// of one integer. universe takes a side and zero or more ordinals and writes
// output0.png, output1.png, ... in the order the ordinals were given. With no
// ordinal, one is picked uniformly at random.
//
// Usage:
//
//	universe [flags] [ordinal ...]
//
// Ordinals accept Go integer literal syntax: 255, 0xff, 0b1111_1111.
//
// Examples:
//
//	universe -side 2 0 1 15          # three 2x2 images
//	universe -side 100 -show         # random 100x100 image, previewed
//	universe -side 16 -browse 0      # step through the 16x16 universe
//	universe -side 64 -oled -dc GPIO25 -save=false
//
// Environment:
//
//	UNIVERSE_SIDE        default for -side
//	UNIVERSE_SIDE_LIMIT  default for -limit
//
// Hardware Setup (for -oled):
//
// Connect an SSD1306 display via SPI:
//
//	Display    Raspberry Pi
//	GND        GND
//	VCC        3.3V
//	SCL/CLK    GPIO11 (SPI0 CLK)
//	SDA/MOSI   GPIO10 (SPI0 MOSI)
//	DC         GPIO25 (configurable)
//	CS         GPIO8 (SPI0 CE0) or GND
package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand/v2"
	"os"
	"strconv"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"

	"github.com/flavioheleno/universe"
	"github.com/flavioheleno/universe/ordinal"
	"github.com/flavioheleno/universe/output"
	"github.com/flavioheleno/universe/viewer"
)

var (
	side    = flag.Int("side", envInt("UNIVERSE_SIDE", universe.DefaultSide), "Image side in pixels")
	limit   = flag.Int("limit", envInt("UNIVERSE_SIDE_LIMIT", universe.DefaultSideLimit), "Largest accepted side")
	pad     = flag.String("pad", "high", "Zero padding position: high, low")
	order   = flag.String("order", "row", "Grid fill order: row, col")
	seed    = flag.Uint64("seed", 0, "Seed for random ordinals (0 for a random seed)")
	save    = flag.Bool("save", true, "Write output<index>.<format> files")
	outDir  = flag.String("out", ".", "Output directory")
	format  = flag.String("format", "png", "Output format: png, bmp, raw")
	show    = flag.Bool("show", false, "Print a preview to stdout")
	browse  = flag.Bool("browse", false, "Browse ordinals interactively")
	verbose = flag.Bool("v", false, "Log each rendered image to stderr")

	oled   = flag.Bool("oled", false, "Draw on an SSD1306 OLED over SPI")
	spiBus = flag.String("spi", "", "SPI bus name (empty for default)")
	dcPin  = flag.String("dc", "GPIO25", "Data/Command pin name")
	width  = flag.Int("width", 128, "OLED width in pixels")
	height = flag.Int("height", 64, "OLED height in pixels")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [ordinal ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	opts, err := rendererOpts()
	if err != nil {
		return err
	}
	r, err := universe.New(opts)
	if err != nil {
		return err
	}

	ordinals, err := parseOrdinals(args)
	if err != nil {
		return err
	}

	var sinks output.Multi
	var files *output.Files
	if *save {
		f, err := output.ParseFormat(*format)
		if err != nil {
			return err
		}
		files = &output.Files{Dir: *outDir, Format: f}
		sinks = append(sinks, files)
	}
	if *show && !*browse {
		sinks = append(sinks, output.NewTerminal(os.Stdout))
	}
	if *oled {
		d, halt, err := openOLED()
		if err != nil {
			return fmt.Errorf("failed to open OLED: %w", err)
		}
		defer halt()
		sinks = append(sinks, d)
	}

	if *browse {
		var start *big.Int
		if len(ordinals) > 0 {
			start = ordinals[0]
		}
		var s universe.Sink
		if files != nil {
			s = files
		}
		m, err := viewer.New(r, *side, start, s)
		if err != nil {
			return err
		}
		return viewer.Run(m)
	}

	out, err := r.RenderBatch(*side, ordinals, sinks)
	if err != nil {
		return err
	}
	if files != nil {
		for _, img := range out {
			fmt.Printf("%s\t%s\n", files.Path(img.Index), ordinal.Approx(img.Ordinal))
		}
	}
	return nil
}

func rendererOpts() (*universe.Opts, error) {
	opts := &universe.Opts{SideLimit: *limit}
	if *limit < 1 || *limit > universe.MaxSideLimit {
		return nil, fmt.Errorf("universe: -limit must be between 1 and %d, got %d", universe.MaxSideLimit, *limit)
	}

	p, err := parsePadding(*pad)
	if err != nil {
		return nil, err
	}
	opts.Padding = p

	o, err := parseOrder(*order)
	if err != nil {
		return nil, err
	}
	opts.Order = o

	if *seed != 0 {
		opts.Source = rand.NewPCG(*seed, *seed)
	}
	if *verbose {
		opts.Logger = log.New(os.Stderr, "universe: ", log.LstdFlags)
	}
	return opts, nil
}

// openOLED initializes periph.io and the SSD1306 panel. The returned func
// halts the panel and closes the bus.
func openOLED() (*output.Drawer, func(), error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("initialize periph.io: %w", err)
	}

	b, err := spireg.Open(*spiBus)
	if err != nil {
		return nil, nil, fmt.Errorf("open SPI bus: %w", err)
	}

	pin := gpioreg.ByName(*dcPin)
	if pin == nil {
		b.Close()
		return nil, nil, fmt.Errorf("GPIO pin %s not found", *dcPin)
	}

	dev, err := ssd1306.NewSPI(b, pin, &ssd1306.Opts{W: *width, H: *height})
	if err != nil {
		b.Close()
		return nil, nil, err
	}
	log.Printf("Display initialized: %v", dev)

	halt := func() {
		dev.Halt()
		b.Close()
	}
	return &output.Drawer{D: dev}, halt, nil
}

func parseOrdinals(args []string) ([]*big.Int, error) {
	out := make([]*big.Int, 0, len(args))
	for i, s := range args {
		n, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, fmt.Errorf("universe: argument %d: %q is not an integer", i, s)
		}
		out = append(out, n)
	}
	return out, nil
}

func parsePadding(s string) (ordinal.Padding, error) {
	switch s {
	case "high":
		return ordinal.PadHigh, nil
	case "low":
		return ordinal.PadLow, nil
	}
	return 0, fmt.Errorf("universe: unknown padding %q (want high or low)", s)
}

func parseOrder(s string) (ordinal.Order, error) {
	switch s {
	case "row":
		return ordinal.RowMajor, nil
	case "col":
		return ordinal.ColumnMajor, nil
	}
	return 0, fmt.Errorf("universe: unknown order %q (want row or col)", s)
}

// envInt returns the integer in environment variable key, or def when it is
// unset or malformed.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
