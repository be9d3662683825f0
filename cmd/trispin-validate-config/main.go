package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/trispin/trispin/lib/config"
	"github.com/trispin/trispin/lib/rendering/shaders"
)

func main() {
	printShaders := flag.Bool("print-shaders", false, "Print the rendered shader sources")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-print-shaders] <config file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Parse(flag.Arg(0))
	if err != nil {
		fmt.Printf("Config invalid: %s\n", err)
		os.Exit(1)
	}

	// shader files are only read at startup, catch template errors here
	shaderer, err := shaders.NewShaderer()
	if err != nil {
		fmt.Printf("Could not load built-in shaders: %s\n", err)
		os.Exit(1)
	}
	sources, err := shaderer.Sources(string(cfg.Shaders.Vertex), string(cfg.Shaders.Fragment), shaders.NewShaderData(cfg.Shaders.GLSLVersion))
	if err != nil {
		fmt.Printf("Shaders invalid: %s\n", err)
		os.Exit(1)
	}

	fmt.Print("Config valid!\n\n")

	fmt.Print(cfg)

	if *printShaders {
		fmt.Printf("\n--- vertex shader ---\n%s\n--- fragment shader ---\n%s", sources.Vertex, sources.Fragment)
	}
}
