package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/karlmutch/envflag"
	"github.com/karlmutch/errors"
	logxi "github.com/mgutz/logxi/v1"

	"github.com/cwbudde/algo-led/led/anim"
	"github.com/cwbudde/algo-led/output/opc"
	"github.com/cwbudde/algo-led/store"
)

var (
	logger = logxi.New("glowd")

	server    = flag.String("server", "127.0.0.1:7890", "OPC server address the frames are pushed to")
	stateFile = flag.String("state", "glowd.yaml", "File the selected animation index persists in")
	animation = flag.Int("animation", -1, "Animation to select at startup, overriding the persisted one")
	refresh   = flag.Duration("refresh", 20*time.Millisecond, "Interval between frame pushes to the OPC server")
	verbose   = flag.Bool("v", false, "When enabled will print internal logging for this tool")
)

func usage() {
	fmt.Fprintln(os.Stderr, path.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], "[options]       LED badge animation daemon")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "glowd runs the badge animation engine and streams its frames to an OPC server")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment Variables:")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "options can also be extracted from environment variables by changing dashes '-' to underscores and using upper case.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "log levels are handled by the LOGXI env variables, these are documented at https://github.com/mgutz/logxi")
}

func init() {
	flag.Usage = usage
}

func main() {
	if !flag.Parsed() {
		envflag.Parse()
	}

	if *verbose {
		logger.SetLevel(logxi.LevelDebug)
	}

	if err := run(); err != nil {
		logger.Error(err.Error())
		os.Exit(-1)
	}
}

func run() (err error) {
	engine, err := anim.New(anim.WithStore(store.NewFile(*stateFile)))
	if err != nil {
		return err
	}
	if *animation >= 0 {
		if err = engine.SetAnimation(*animation); err != nil {
			return err
		}
	}

	sink, errGo := opc.NewSink(*server, engine.Strip(), engine.Color())
	if errGo != nil {
		return errGo
	}

	quitC := make(chan struct{})
	errorC := make(chan errors.Error, 4)
	go sink.Run(*refresh, errorC, quitC)

	stopC := make(chan os.Signal, 1)
	signal.Notify(stopC, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()

	logger.Info("streaming", "server", *server, "animation", engine.Catalog()[engine.Animation()].Name)

	for {
		select {
		case <-ticker.C:
			engine.Cycle()
		case err := <-errorC:
			logger.Warn(err.Error())
		case <-stopC:
			shutdown(engine, sink)
			close(quitC)
			return nil
		}
	}
}

// shutdown parks the badge on the terminal all-dark animation and
// pushes that frame out before the process exits.
func shutdown(engine *anim.Engine, sink *opc.Sink) {
	if err := engine.SetAnimation(len(engine.Catalog()) - 1); err != nil {
		logger.Warn(err.Error())
	}
	// Let the wall clock tick over so the switch executes.
	time.Sleep(2 * time.Millisecond)
	engine.Cycle()
	if err := sink.Send(); err != nil {
		logger.Warn(err.Error())
	}
	logger.Info("stopped")
}
