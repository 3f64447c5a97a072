package main

import (
	"flag"
	"fmt"
	"io"
)

func cmdSignTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read binary serialized transaction from standard input, sign it with the
private key and write the result to standard output. The signature sequence is
loaded from the node.

A transaction can be signed several times, once per signer.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file. You can use BEEHIVECLI_PRIV_KEY environment variable to set it.")
		nodeFl = fl.String("node", defaultNode(),
			"Tendermint RPC address. You can use BEEHIVECLI_NODE environment variable to set it.")
		chainFl = fl.String("chain", defaultChain(),
			"Chain ID the signature is valid for. You can use BEEHIVECLI_CHAIN environment variable to set it.")
	)
	fl.Parse(args)

	if *chainFl == "" {
		flagDie("chain ID is required")
	}

	key, err := readKey(*keyPathFl)
	if err != nil {
		return err
	}
	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction from input: %s", err)
	}

	nonce, err := newClient(*nodeFl).Nonce(key.PublicKey().Address())
	if err != nil {
		return fmt.Errorf("cannot load nonce: %s", err)
	}
	if err := tx.Sign(key, *chainFl, nonce); err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	_, err = writeTx(output, tx)
	return err
}
