package main

import (
	"flag"
	"fmt"
	"io"

	beehived "github.com/beehive-network/beehive/cmd/beehived/app"
	"github.com/beehive-network/beehive/x/cash"
)

func cmdSend(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for transfering funds from the source account to the
destination account.
`)
		fl.PrintDefaults()
	}
	var (
		srcFl    = flAddress(fl, "src", "", "A source account address that the funds are send from.")
		dstFl    = flAddress(fl, "dst", "", "A destination account address that the funds are send to.")
		amountFl = fl.Uint64("amount", 0, "An amount that is to be transferred.")
		memoFl   = fl.String("memo", "", "A short message attached to the transfer operation.")
	)
	fl.Parse(args)

	msg := &cash.SendMsg{
		Source:      *srcFl,
		Destination: *dstFl,
		Amount:      *amountFl,
		Memo:        *memoFl,
	}
	if err := msg.Validate(); err != nil {
		flagDie("invalid transfer: %s", err)
	}
	_, err := writeTx(output, &beehived.Tx{Msg: msg})
	return err
}
