package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/retrogb/dmgcore/internal/dmglog"
	"github.com/retrogb/dmgcore/internal/machine"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	flag.Parse()

	rom := *romFile
	if rom == "" {
		rom = flag.Arg(0)
	}
	if rom == "" {
		fmt.Fprintln(os.Stderr, "usage: dmgcore [-rom] <rom file>")
		os.Exit(2)
	}

	log := dmglog.New()
	m := machine.New(log)
	if err := m.LoadCartridge(rom); err != nil {
		log.Errorf("dmgcore: %v", err)
		os.Exit(1)
	}

	m.Boot()
	if err := m.Run(context.Background()); err != nil {
		log.Errorf("dmgcore: %v", err)
		os.Exit(1)
	}
}
