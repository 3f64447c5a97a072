package bech32

import (
	"testing"

	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/hivetest/assert"
)

// payload of the package documentation example
var docPayload = []byte("beehive reward pool!")

const docEncoded = "hive1vfjk26rfwejjqun9washyepqwphk7mpphygksu"

func TestEncode(t *testing.T) {
	raw, err := Encode("hive", docPayload)
	assert.Nil(t, err)
	assert.Equal(t, docEncoded, string(raw))
}

func TestDecode(t *testing.T) {
	cases := map[string]struct {
		raw         string
		hrp         string
		wantPayload []byte
		wantErr     *errors.Error
	}{
		"hive address": {
			raw:         docEncoded,
			hrp:         "hive",
			wantPayload: docPayload,
		},
		"upper case": {
			raw:         "HIVE1VFJK26RFWEJJQUN9WASHYEPQWPHK7MPPHYGKSU",
			hrp:         "hive",
			wantPayload: docPayload,
		},
		"foreign prefix": {
			raw:     "tiov1w3jhxapdwpshjmr0v9jqymqq4y",
			hrp:     "hive",
			wantErr: errors.ErrInput,
		},
		"broken checksum": {
			raw:     "hive1vfjk26rfwejjqun9washyepqwphk7mpphygksq",
			hrp:     "hive",
			wantErr: errors.ErrInput,
		},
		"no separator": {
			raw:     "hivevfjk26rfwejjqun9washyepqwphk7mpphygksu",
			hrp:     "hive",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			payload, err := DecodeWithPrefix(tc.hrp, tc.raw)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantPayload, payload)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"address size": make([]byte, 20),
		"single byte":  {0xff},
	}
	for testName, payload := range payloads {
		t.Run(testName, func(t *testing.T) {
			raw, err := Encode("hive", payload)
			assert.Nil(t, err)
			hrp, got, err := Decode(string(raw))
			assert.Nil(t, err)
			assert.Equal(t, "hive", hrp)
			assert.Equal(t, len(payload), len(got))
		})
	}
}
