//go:build tinygo

package main

import (
	"sgfx/app"
	"sgfx/hal"
)

func main() {
	app.Run(hal.New())
}
