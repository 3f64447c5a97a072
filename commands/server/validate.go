package server

import (
	"encoding/json"
	"io/ioutil"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/store"
)

// ValidateGenesis runs the initializer on the app state of every given
// genesis file, discarding the result.
func ValidateGenesis(ini beehive.Initializer, genesisPaths []string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini beehive.Initializer, genesisPath string) error {
	b, err := ioutil.ReadFile(genesisPath)
	if err != nil {
		return errors.Wrap(err, "cannot read genesis file")
	}

	var genesis struct {
		State json.RawMessage `json:"app_state"`
	}
	if err := json.Unmarshal(b, &genesis); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot JSON deserialize genesis: %s", err)
	}
	return ValidateAppState(ini, genesis.State)
}

// ValidateAppState runs the initializer on the raw app state against an in
// memory store.
func ValidateAppState(ini beehive.Initializer, appState json.RawMessage) error {
	var opts beehive.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot parse app state: %s", err)
	}
	if err := ini.FromGenesis(opts, store.MemStore()); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}
	return nil
}
