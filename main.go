package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chemkit/formenum/formula"
	"github.com/chemkit/formenum/logger"
)

func main() {
	var (
		elements  string
		ionName   string
		window    int
		tolerance float64
		raw       bool
		parallel  bool
		verbose   bool
	)
	flag.StringVar(&elements, "elements", "C,H,N,O,P,S", "comma-separated element symbols to consider")
	flag.StringVar(&ionName, "ion", "", "adduct of the observed m/z, e.g. M+H; empty means the value is a neutral mass")
	flag.IntVar(&window, "window", formula.DefaultWindow, "integer targets explored on each side of the rounded mass")
	flag.Float64Var(&tolerance, "tolerance", formula.DefaultTolerance, "exact-mass tolerance in Daltons")
	flag.BoolVar(&raw, "raw", false, "print unfiltered integer candidates instead of exact-mass matches")
	flag.BoolVar(&parallel, "parallel", false, "solve window targets concurrently")
	flag.BoolVar(&verbose, "verbose", false, "sets verbose mode on")
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] mass\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if !verbose {
		logger.Disable()
	}
	mass, err := strconv.ParseFloat(flag.Args()[0], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid mass %q: %v\n", flag.Args()[0], err)
		os.Exit(1)
	}
	atoms, err := formula.AtomsFor(strings.Split(elements, ",")...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid element set: %v\n", err)
		os.Exit(1)
	}
	if ionName != "" {
		ion, err := formula.IonByName(ionName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid ion: %v\n", err)
			os.Exit(1)
		}
		mass = formula.NeutralMass(mass, ion)
	}

	e := formula.NewEnumerator(
		formula.WithWindow(window),
		formula.WithTolerance(tolerance),
		formula.WithParallel(parallel),
	)
	var formulas []formula.Formula
	if raw {
		formulas, err = e.IntegerCandidates(mass, atoms)
	} else {
		formulas, err = e.Enumerate(mass, atoms)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "enumeration failed: %v\n", err)
		os.Exit(1)
	}
	for _, f := range formulas {
		fmt.Println(f)
	}
}
