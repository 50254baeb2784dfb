/*
Package suite reads and runs perft suite files: one record per non-blank
line, "<fen> ; <n1> ; <n2> ; ... ; <nD>", where n_i is the expected
leaf-node count for depth i.
*/
package suite

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-chess/bitengine"
	"github.com/go-chess/bitengine/internal/logging"
	"github.com/go-chess/bitengine/perft"
)

// ErrOutOfBoundsPerftData is reported when a requested perft depth
// exceeds the number of expected counts a suite record provides. The
// record being checked is skipped for that depth; the run continues.
var ErrOutOfBoundsPerftData = errors.New("suite: perft depth exceeds recorded expected counts")

// Record is one perft suite entry: a starting position and its expected
// leaf-node count at depth i for i = 1..len(Expected).
type Record struct {
	FEN      string
	Expected []int
}

// Parse reads suite records from r, one per non-blank, non-comment line.
// Lines beginning with '#' are treated as comments, for inline
// annotations in fixture files.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ";")
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: expected at least one depth field: %q", bitengine.ErrMalformedFEN, line)
		}

		rec := Record{FEN: strings.TrimSpace(fields[0])}
		for _, f := range fields[1:] {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%w: invalid node count %q in %q", bitengine.ErrMalformedFEN, f, line)
			}
			rec.Expected = append(rec.Expected, n)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Run checks every record up to maxDepth (or the record's own depth, if
// shallower) and logs progress via the shared logger. It returns false if
// any depth's node count mismatched its expected value.
func Run(records []Record, maxDepth int) bool {
	log := logging.GetLog()
	allPassed := true

	for _, rec := range records {
		pos, err := bitengine.ParseFEN(rec.FEN)
		if err != nil {
			log.Errorf("skipping record %q: %v", rec.FEN, err)
			allPassed = false
			continue
		}

		depth := maxDepth
		if depth > len(rec.Expected) {
			log.Warningf("%v: record %q only provides %d depths, requested %d",
				ErrOutOfBoundsPerftData, rec.FEN, len(rec.Expected), maxDepth)
			depth = len(rec.Expected)
		}

		for d := 1; d <= depth; d++ {
			got := perft.Perft(pos, d)
			want := rec.Expected[d-1]
			if got != want {
				log.Errorf("%q depth %d: expected %d nodes, got %d", rec.FEN, d, want, got)
				allPassed = false
				continue
			}
			log.Infof("%q depth %d: %d nodes OK", rec.FEN, d, got)
		}
	}

	return allPassed
}
