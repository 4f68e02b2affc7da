// Command survival-api serves the survival-analysis page and results API.
package main

import (
	"os"

	"github.com/biodemo/biodemo/internal/app"
)

func main() {
	os.Exit(app.Main(app.NewSurvival))
}
