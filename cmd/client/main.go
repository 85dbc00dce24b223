package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/client/cli"
	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
)

func main() {

	cfg, args, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n%v\n", err, cli.ErrUsage)
		os.Exit(2)
	}

	api, err := client.NewGRPCClient(cfg.ServerEndpointAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer api.Close()

	app := cli.NewApp(cfg, api, os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		api.Close()
		os.Exit(1)
	}

}
