package main

import (
	"os"

	"github.com/ayoisaiah/pomade/app"
	"github.com/ayoisaiah/pomade/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
