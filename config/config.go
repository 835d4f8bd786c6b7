// Package config holds the workload configuration for the cmpstat
// analysis tool. Values come from flags with TREEDB_-prefixed
// environment fallbacks, or wholesale from a YAML workload file.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Workload describes one cmpstat run.
type Workload struct {
	Records    int      `yaml:"records"`     // synthetic records to load
	Seed       int64    `yaml:"seed"`        // RNG seed; runs with the same seed are identical
	Lookups    int      `yaml:"lookups"`     // point lookups to measure
	RangeWidth int      `yaml:"range_width"` // width of the sample id range scan
	Deletes    int      `yaml:"deletes"`     // records to soft-delete before the stats report
	Prefixes   []string `yaml:"prefixes"`    // last-name prefixes to scan
}

type Config struct {
	Workload Workload
}

func defaultWorkload() Workload {
	return Workload{
		Records:    10000,
		Seed:       1,
		Lookups:    1000,
		RangeWidth: 100,
		Deletes:    100,
		Prefixes:   []string{"sm", "jo"},
	}
}

// Parse reads flags (and their environment fallbacks). When -workload
// names a YAML file, that file replaces the flag values entirely.
func Parse() (*Config, error) {
	def := defaultWorkload()
	w := def

	var (
		file     string
		prefixes string
	)
	flag.StringVar(&file, "workload", envStr("TREEDB_WORKLOAD", ""), "YAML workload file (replaces the other flags)")
	flag.IntVar(&w.Records, "records", envInt("TREEDB_RECORDS", def.Records), "records to load")
	flag.Int64Var(&w.Seed, "seed", int64(envInt("TREEDB_SEED", int(def.Seed))), "RNG seed")
	flag.IntVar(&w.Lookups, "lookups", envInt("TREEDB_LOOKUPS", def.Lookups), "point lookups to measure")
	flag.IntVar(&w.RangeWidth, "range-width", envInt("TREEDB_RANGE_WIDTH", def.RangeWidth), "sample id range width")
	flag.IntVar(&w.Deletes, "deletes", envInt("TREEDB_DELETES", def.Deletes), "records to soft-delete before the stats report")
	flag.StringVar(&prefixes, "prefixes", envStr("TREEDB_PREFIXES", strings.Join(def.Prefixes, ",")), "comma-separated last-name prefixes to scan")
	flag.Parse()

	w.Prefixes = splitList(prefixes)

	if file != "" {
		loaded, err := LoadWorkload(file)
		if err != nil {
			return nil, err
		}
		w = loaded
	}

	applyDefaults(&w)
	return &Config{Workload: w}, nil
}

// LoadWorkload reads a workload definition from a YAML file. Fields
// absent from the file keep their defaults.
func LoadWorkload(path string) (Workload, error) {
	w := defaultWorkload()
	data, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read workload: %w", err)
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return w, fmt.Errorf("parse workload %s: %w", path, err)
	}
	applyDefaults(&w)
	return w, nil
}

func applyDefaults(w *Workload) {
	def := defaultWorkload()
	if w.Records <= 0 {
		w.Records = def.Records
	}
	if w.Lookups <= 0 {
		w.Lookups = def.Lookups
	}
	if w.RangeWidth <= 0 {
		w.RangeWidth = def.RangeWidth
	}
	if w.Deletes < 0 {
		w.Deletes = 0
	}
	if w.Deletes > w.Records {
		w.Deletes = w.Records
	}
	if len(w.Prefixes) == 0 {
		w.Prefixes = def.Prefixes
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
