// Command gene-api serves the gene expression API.
package main

import (
	"os"

	"github.com/biodemo/biodemo/internal/app"
)

func main() {
	os.Exit(app.Main(app.NewGeneAPI))
}
