package main

import (
	"flag"
	"fmt"
	"io"

	beehived "github.com/beehive-network/beehive/cmd/beehived/app"
	"github.com/beehive-network/beehive/x/rewardpool"
)

func cmdInitialize(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that sets up the reward pool with the given owner. Only
the first initialization succeeds.
`)
		fl.PrintDefaults()
	}
	var (
		ownerFl = flAddress(fl, "owner", "", "Address of the reward pool owner.")
	)
	fl.Parse(args)

	msg := &rewardpool.InitializeMsg{Owner: *ownerFl}
	if err := msg.Validate(); err != nil {
		flagDie("invalid owner: %s", err)
	}
	_, err := writeTx(output, &beehived.Tx{Msg: msg})
	return err
}

func cmdTransferOwnership(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that hands the reward pool over to a new owner. It must
be signed by the current owner.
`)
		fl.PrintDefaults()
	}
	var (
		ownerFl = flAddress(fl, "owner", "", "Address of the new reward pool owner.")
	)
	fl.Parse(args)

	msg := &rewardpool.TransferOwnershipMsg{NewOwner: *ownerFl}
	if err := msg.Validate(); err != nil {
		flagDie("invalid owner: %s", err)
	}
	_, err := writeTx(output, &beehived.Tx{Msg: msg})
	return err
}

func cmdPause(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that stops all distributions. It must be signed by the
owner.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	_, err := writeTx(output, &beehived.Tx{Msg: &rewardpool.PauseMsg{}})
	return err
}

func cmdUnpause(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that allows distributions again. It must be signed by
the owner.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	_, err := writeTx(output, &beehived.Tx{Msg: &rewardpool.UnpauseMsg{}})
	return err
}

func cmdDeposit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that moves funds of the signer into the reward pool.
`)
		fl.PrintDefaults()
	}
	var (
		amountFl = fl.Uint64("amount", 0, "Amount to deposit.")
	)
	fl.Parse(args)

	msg := &rewardpool.DepositMsg{Amount: *amountFl}
	if err := msg.Validate(); err != nil {
		flagDie("invalid deposit: %s", err)
	}
	_, err := writeTx(output, &beehived.Tx{Msg: msg})
	return err
}

func cmdDistribute(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that pays a reward from the pool to the recipient. It must
be signed by the owner.
`)
		fl.PrintDefaults()
	}
	var (
		recipientFl = flAddress(fl, "recipient", "", "Address receiving the reward.")
		amountFl    = fl.Uint64("amount", 0, "Amount to distribute.")
	)
	fl.Parse(args)

	msg := &rewardpool.DistributeMsg{Recipient: *recipientFl, Amount: *amountFl}
	if err := msg.Validate(); err != nil {
		flagDie("invalid distribution: %s", err)
	}
	_, err := writeTx(output, &beehived.Tx{Msg: msg})
	return err
}
