/*
Command perft runs a perft suite at a configurable maximum depth. With no
-suite file it runs the single standard starting position to -depth and
reports the node count; with -suite it checks every record's
depth-by-depth expected counts and exits non-zero on any mismatch.
*/
package main

import (
	"flag"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-chess/bitengine"
	"github.com/go-chess/bitengine/internal/logging"
	"github.com/go-chess/bitengine/internal/suite"
	"github.com/go-chess/bitengine/perft"
)

var out = message.NewPrinter(language.English)

func main() {
	depth := flag.Int("depth", 4, "performance test depth")
	suitePath := flag.String("suite", "", "perft suite file to check (each record up to -depth, or its own depth if shallower)")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile")
	memprofile := flag.String("memprofile", "", "file to write a memory profile")
	flag.Parse()

	log := logging.GetLog()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("cpuprofile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("cpuprofile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	var ok bool
	if *suitePath != "" {
		ok = runSuite(*suitePath, *depth)
	} else {
		ok = runSingle(*depth)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatalf("memprofile: %v", err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("memprofile: %v", err)
		}
	}

	if !ok {
		os.Exit(1)
	}
}

func runSingle(depth int) bool {
	log := logging.GetLog()

	pos, err := bitengine.ParseFEN(bitengine.InitialPos)
	if err != nil {
		log.Fatalf("parsing the initial position: %v", err)
	}

	start := time.Now()
	nodes := perft.Perft(pos, depth)
	elapsed := time.Since(start)

	out.Printf("depth %d: %d nodes in %s\n", depth, nodes, elapsed)
	return true
}

func runSuite(path string, maxDepth int) bool {
	log := logging.GetLog()

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("opening suite file: %v", err)
	}
	defer f.Close()

	records, err := suite.Parse(f)
	if err != nil {
		log.Fatalf("parsing suite file: %v", err)
	}
	log.Infof("loaded %s records from %s", out.Sprintf("%d", len(records)), path)

	start := time.Now()
	ok := suite.Run(records, maxDepth)
	elapsed := time.Since(start)

	log.Infof("suite finished in %s", elapsed)
	return ok
}
