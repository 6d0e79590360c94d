package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/kindling-go/kindling/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityKey  = "arity"
	outputKey = "output"
)

func main() {
	cmd := &cli.Command{
		Name:  "codegen",
		Usage: "Generate the SetAllN batch setters",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityKey,
				Usage: "Highest arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Output file, relative to the repo root",
				Value: "setn.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("codegen started")
	defer func() {
		log.Printf("codegen finished in %v", time.Since(start))
	}()

	arity := int(cmd.Uint(arityKey))
	output := cmd.String(outputKey)
	log.Printf("arity: %d, output: %s", arity, output)

	contents := templates.SetAllGen(arity)
	return os.WriteFile(output, []byte(contents), 0644)
}
