package main

import (
	"log"

	"github.com/tutils/trand/cmd"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	cmd.Execute()
}
