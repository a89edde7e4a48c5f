package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/followparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const genericParamCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the arity-expanded effect watchers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of generic parameters to generate",
				Value: 8,
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
	log.Printf("Codegen for signals started!")
	defer func() {
		log.Printf("Codegen for signals finished in %v", time.Since(start))
	}()

	genericParamCount := cmd.Uint(genericParamCountKey)

	contents := templates.EffectsGen(int(genericParamCount))
	if err := os.WriteFile("signals/effects.go", []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}
