package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-textmodel/pkg/compiler"
	"github.com/goliatone/go-textmodel/pkg/document"
)

func main() {
	docPath := flag.String("document", "template.yaml", "template document path (YAML or JSON)")
	targetPath := flag.String("target", "", "YAML file with render target values")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	doc, err := document.Load(*docPath)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	rendered, err := doc.Compile(compiler.Default(), nil)
	if err != nil {
		log.Fatalf("Failed to compile document: %v", err)
	}

	target, err := loadTarget(*targetPath)
	if err != nil {
		log.Fatalf("Failed to load target: %v", err)
	}

	out, err := rendered.Render(target)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(out), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Println(out)
	}
}

func loadTarget(path string) (map[string]any, error) {
	target := map[string]any{}
	if path == "" {
		return target, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &target); err != nil {
		return nil, err
	}
	return target, nil
}
