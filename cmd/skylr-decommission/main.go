package main

import (
	"log"
	"os"

	"github.com/r-heap47/skylr/skylr-fleet/internal/boot"
)

func main() {
	if err := boot.Decommission(os.Args[1:]); err != nil {
		log.Fatalf("[FATAL] %s", err)
	}
}
