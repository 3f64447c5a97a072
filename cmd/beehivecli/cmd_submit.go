package main

import (
	"flag"
	"fmt"
	"io"
)

func cmdSubmitTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read binary serialized transaction from standard input and submit it. The
command waits until the transaction is committed and prints its hash, height
and tags.

Make sure to collect enough signatures before submitting the transaction.
`)
		fl.PrintDefaults()
	}
	var (
		nodeFl = fl.String("node", defaultNode(),
			"Tendermint RPC address. You can use BEEHIVECLI_NODE environment variable to set it.")
	)
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction from input: %s", err)
	}

	res, err := newClient(*nodeFl).BroadcastTx(tx)
	if err != nil {
		return fmt.Errorf("cannot broadcast transaction: %s", err)
	}
	fmt.Fprintf(output, "hash: %X\nheight: %d\n", res.ID, res.Height)
	for _, tag := range res.Result.Tags {
		fmt.Fprintf(output, "%s: %s\n", tag.Key, tag.Value)
	}
	return nil
}
