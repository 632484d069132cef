package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	config_global "github.com/accessfs/gsxa/internal/config"
	"github.com/accessfs/gsxa/internal/simbus"
	state_new "github.com/accessfs/gsxa/internal/state/new"
	"github.com/accessfs/gsxa/internal/ui"
	"github.com/accessfs/gsxa/log2"
	"github.com/mattn/go-isatty"
)

var log = log2.NewStderr(log2.LDebug)

var BuildVersion string = "unknown" // set by ldflags -X

func main() {
	flagset := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	flagset.Usage = func() {
		fmt.Fprint(flagset.Output(), "Usage: gsxa [option...] [console]\n\nOptions:\n")
		flagset.PrintDefaults()
	}
	configPath := flagset.String("config", "gsxa.hcl", "")
	onlyVersion := flagset.Bool("version", false, "print build version and exit")
	if err := flagset.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("gsxa %s\n", BuildVersion)
	if *onlyVersion {
		return
	}

	log.SetFlags(log2.LStdFlags)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.SetFlags(log2.LInteractiveFlags)
	}

	bus := simbus.New(log)
	ctx, g := state_new.NewContext(log, bus)
	g.BuildVersion = BuildVersion
	cfg := config_global.ReadConfig(log, *configPath)
	if err := g.Init(ctx, cfg); err != nil {
		log.Fatal(err)
	}
	defer g.Speech.Close()
	defer bus.Close()
	// hand the menu back to GSX on the way out
	defer func() { _ = bus.WriteLVar(simbus.LVarMenuRemote, 0) }()

	runCtx, cancel := context.WithCancel(ctx)
	go func() {
		<-g.Alive.StopChan()
		cancel()
	}()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		g.Stop()
	}()

	u := &ui.UI{}
	if err := u.Init(ctx); err != nil {
		log.Fatal(err)
	}

	go g.Input.Run(inputSources(cfg))

	if flagset.Arg(0) == "console" {
		go consoleLoop(g, u)
	}

	u.Loop(runCtx)
	g.Stop()
	g.Alive.Wait()
}
