package main

import (
	"flag"
	"log"
	"os"

	"life-rle/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := app.Run(cfg, os.Stdin, os.Stdout, log.Default()); err != nil {
		log.Fatal(err)
	}
}
