package main

import (
	"github.com/humanbelnik/coordinator/internal/app"
	"github.com/humanbelnik/coordinator/internal/config"
)

func main() {
	app.Go(config.Load())
}
