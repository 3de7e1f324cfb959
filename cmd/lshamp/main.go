// Command lshamp searches for LSH banding parameters that meet target
// false positive and false negative rates.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/jcalabro/lshamp"
)

var version = "dev"

type goal struct {
	title  string
	maxFPR lshamp.Bound
	maxFNR lshamp.Bound
}

// referenceGoals are run when no constraint flag is given.
var referenceGoals = []goal{
	{title: "GOAL A: Reduce FPR from 0.4 to < 0.15", maxFPR: lshamp.Below(0.15)},
	{title: "GOAL B: Reduce FNR from 0.2 to < 0.10", maxFNR: lshamp.Below(0.10)},
	{title: "GOAL C: Reduce BOTH FPR and FNR to < 0.05", maxFPR: lshamp.Below(0.05), maxFNR: lshamp.Below(0.05)},
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)
	log.SetPrefix("lshamp: ")

	cfg := lshamp.DefaultSearchConfig()
	if err := envInt("LSHAMP_MAX_ROWS", &cfg.MaxRows); err != nil {
		log.Fatal(err)
	}
	if err := envInt("LSHAMP_MAX_BANDS", &cfg.MaxBands); err != nil {
		log.Fatal(err)
	}

	var (
		showVersion = flag.Bool("version", false, "print version and exit")
		scheme      = flag.String("scheme", "both", "composition scheme: or-and, and-or or both")
		maxFPR      = flag.Float64("max-fpr", -1, "strict upper bound on amplified FPR (negative disables)")
		maxFNR      = flag.Float64("max-fnr", -1, "strict upper bound on amplified FNR (negative disables)")
	)
	flag.IntVar(&cfg.MaxRows, "max-rows", cfg.MaxRows, "largest rows per band to try")
	flag.IntVar(&cfg.MaxBands, "max-bands", cfg.MaxBands, "largest band count to try")
	flag.Float64Var(&cfg.Sensitivity.PNear, "p-near", cfg.Sensitivity.PNear, "base collision probability of similar pairs")
	flag.Float64Var(&cfg.Sensitivity.PFar, "p-far", cfg.Sensitivity.PFar, "base collision probability of dissimilar pairs")
	flag.Parse()

	if *showVersion {
		fmt.Printf("lshamp %s\n", version)
		return
	}

	schemes, err := parseSchemes(*scheme)
	if err != nil {
		log.Fatal(err)
	}

	goals := referenceGoals
	if *maxFPR >= 0 || *maxFNR >= 0 {
		g := goal{title: "Custom goal"}
		if *maxFPR >= 0 {
			g.maxFPR = lshamp.Below(*maxFPR)
		}
		if *maxFNR >= 0 {
			g.maxFNR = lshamp.Below(*maxFNR)
		}
		goals = []goal{g}
	}

	log.Printf("searching r<=%d b<=%d with p_near=%v p_far=%v",
		cfg.MaxRows, cfg.MaxBands, cfg.Sensitivity.PNear, cfg.Sensitivity.PFar)

	if err := run(os.Stdout, cfg, goals, schemes); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, cfg lshamp.SearchConfig, goals []goal, schemes []lshamp.Scheme) error {
	for i, g := range goals {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n\n", g.title)

		cfg.MaxFPR = g.maxFPR
		cfg.MaxFNR = g.maxFNR
		for _, s := range schemes {
			res, err := lshamp.FindParams(cfg, s)
			if err != nil {
				return err
			}
			writeResult(w, s.String()+" best", res)
		}
	}
	return nil
}

// writeResult prints one search outcome, including the no-solution case.
func writeResult(w io.Writer, name string, res *lshamp.Result) {
	if res == nil {
		fmt.Fprintf(w, "%s: no solution found in search bounds.\n", name)
		return
	}
	fmt.Fprintf(w, "%s: r=%d, b=%d, total rows r*b=%d\n", name, res.Rows, res.Bands, res.Cost())
	fmt.Fprintf(w, "  TPR=%.6f  FPR=%.6f  FNR=%.6f  threshold~%.3f\n", res.TPR, res.FPR, res.FNR, res.Threshold)
}

func parseSchemes(s string) ([]lshamp.Scheme, error) {
	switch s {
	case "or-and":
		return []lshamp.Scheme{lshamp.OrAnd}, nil
	case "and-or":
		return []lshamp.Scheme{lshamp.AndOr}, nil
	case "both":
		return []lshamp.Scheme{lshamp.OrAnd, lshamp.AndOr}, nil
	default:
		return nil, fmt.Errorf("unknown scheme %q", s)
	}
}

// envInt overrides *dst with the integer in environment variable key, if set.
func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
