/*
Package ballicon renders the tennis ball app icon procedurally: a gold ball with two
white seams on a dark green background. The icon is drawn on a canvas four times
larger than the requested size and downscaled with a Lanczos filter, which gives
smooth, anti-aliased edges at every resolution.

The package provides a command line interface which writes the whole icon set
(web icons, favicons and the Xcode app icon) in a single run:

	$ ballicon -out public

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"image/png"
		"log"
		"os"

		"github.com/tennismath/ballicon"
	)

	func main() {
		img, err := ballicon.Render(512)
		if err != nil {
			log.Fatalf("error rendering the icon: %v", err)
		}
		f, err := os.Create("icon-512.png")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		if err := png.Encode(f, img); err != nil {
			log.Fatal(err)
		}
	}
*/
package ballicon
