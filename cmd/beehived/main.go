package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beehive-network/beehive"
	beehived "github.com/beehive-network/beehive/cmd/beehived/app"
	"github.com/beehive-network/beehive/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".beehived")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("beehived")
	fmt.Println("          Beehive reward pool node")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("start     Run the abci server")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.beehived")

init [-force] [address] [balance]
        fund and make owner the given address, or a generated one

start [-bind addr] [-debug] [-log_level level] [-db path] [-audit path] [-metrics addr]
        flags override <home>/config/beehived.toml`)
}

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "beehive")

	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(beehived.GenInitOptions, beehived.Initializers(), logger, *varHome, rest)
	case "start":
		err = server.StartCmd(beehived.GenerateApp, logger, *varHome, rest)
	case "version":
		fmt.Println(beehive.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
