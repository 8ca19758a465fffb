package main

import (
	"os"

	"github.com/lumina-bi/lumina-bi/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
