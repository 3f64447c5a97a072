package server

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/crypto"
	"github.com/beehive-network/beehive/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagForce   = "force"
	appStateKey = "app_state"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisFile is the tendermint genesis location, relative to the home
// directory.
const GenesisFile = "config/genesis.json"

// GenerateCoinKey returns a fresh private key along with its address.
// You can give coins to this address in the genesis file.
func GenerateCoinKey() (beehive.Address, *crypto.PrivateKey) {
	key := crypto.GenPrivKeyEd25519()
	return key.PublicKey().Address(), key
}

// InitCmd will add the generated app_state to an existing tendermint
// genesis file, created with `tendermint init` in the same home directory.
// The app state is run through the initializer first, so a broken genesis
// is never written. A default config file is created when missing.
func InitCmd(gen GenOptions, ini beehive.Initializer, logger log.Logger, home string, args []string) error {
	var force bool
	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	initFlags.BoolVar(&force, flagForce, false, "overwrite an existing app_state")
	if err := initFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	appState, err := gen(initFlags.Args())
	if err != nil {
		return err
	}
	if ini != nil {
		if err := ValidateAppState(ini, appState); err != nil {
			return err
		}
	}

	genFile := filepath.Join(home, GenesisFile)
	if err := addGenesisOptions(genFile, appState, force); err != nil {
		return err
	}
	logger.Info("Wrote app_state", "path", genFile)

	confFile := filepath.Join(home, ConfigFile)
	if _, err := os.Stat(confFile); os.IsNotExist(err) {
		if err := WriteConfig(home, DefaultConfig(home)); err != nil {
			return err
		}
		logger.Info("Wrote default config", "path", confFile)
	}
	return nil
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, appState json.RawMessage, force bool) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(errors.ErrNotFound, "read genesis, run tendermint init first: %s", err)
	}

	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "parse genesis: %s", err)
	}
	if existing := doc[appStateKey]; len(existing) > 0 && string(existing) != "null" && !force {
		return errors.Wrap(errors.ErrState, "app_state already set, use -force to overwrite")
	}

	doc[appStateKey] = appState
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serialize genesis")
	}
	return ioutil.WriteFile(filename, out, 0600)
}
