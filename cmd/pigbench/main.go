package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/lixenwraith/pigroll/bench"
	"github.com/lixenwraith/pigroll/config"
	"github.com/lixenwraith/pigroll/random"
)

var (
	tosses   = flag.Int("n", 1000, "Number of tosses")
	seedFlag = flag.Uint64("seed", 0, "RNG seed (0 = random)")
	jsonOut  = flag.Bool("json", false, "Print the report as JSON")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("pigbench: %v", err)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if cfg.Seed, err = random.Resolve(cfg.Seed); err != nil {
		config.Exitf("pigbench: %v", err)
	}

	report := bench.Run(cfg.Match(), *tosses)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(report)
	} else {
		err = report.Write(os.Stdout)
	}
	if err != nil {
		config.Exitf("pigbench: %v", err)
	}
}
