// Tdtint - a Telegram Desktop theme generator
//
// Tdtint extracts colour palettes from images and turns them into
// complete Telegram Desktop colour themes.
package main

import (
	"tdtint/internal/cli"
)

func main() {
	cli.Execute()
}
