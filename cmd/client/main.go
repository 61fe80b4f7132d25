package main

import (
	"context"
	"fmt"
	"os"

	"github.com/courtside/courtside/internal/client/cli"
	"github.com/courtside/courtside/internal/client/config"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	app := cli.NewApp(cfg)
	os.Exit(app.Run(context.Background(), os.Args[1:]))
}
