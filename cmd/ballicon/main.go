package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/tennismath/ballicon"
	"github.com/tennismath/ballicon/utils"
)

const HelpBanner = `
┌┐ ┌─┐┬  ┬  ┬┌─┐┌─┐┌┐┌
├┴┐├─┤│  │  ││  │ ││││
└─┘┴ ┴┴─┘┴─┘┴└─┘└─┘┘└┘

Tennis ball icon set generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	destination = flag.String("out", ballicon.DefaultDst, "Destination directory of the icon set")
	assets      = flag.String("assets", ballicon.DefaultAssets, "Xcode AppIcon asset directory (skipped if missing, empty to disable)")
	backend     = flag.String("backend", string(ballicon.Vector), "Rasterizer backend: vector or rasterx")
	withICO     = flag.Bool("ico", false, "Also write a favicon.ico")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of icons to render concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	b, err := ballicon.ParseBackend(*backend)
	if err != nil {
		flag.Usage()
		log.Fatalf(utils.DecorateText("\n%v", utils.ErrorMessage), err)
	}

	op := &ballicon.Ops{
		Dst:     *destination,
		Assets:  *assets,
		Workers: *workers,
		ICO:     *withICO,
	}
	if err := op.Execute(ballicon.NewRenderer(b)); err != nil {
		log.Fatalf(
			utils.DecorateText("\nError generating the icon set: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}
}
