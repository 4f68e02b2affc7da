// Command frontend serves the static single-page frontend.
package main

import (
	"os"

	"github.com/biodemo/biodemo/internal/app"
)

func main() {
	os.Exit(app.Main(app.NewFrontend))
}
