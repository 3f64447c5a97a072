package cash

import (
	"math"
	"testing"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/hivetest"
	"github.com/beehive-network/beehive/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveCoins(t *testing.T) {
	alice := hivetest.NewCondition().Address()
	bob := hivetest.NewCondition().Address()

	cases := map[string]struct {
		init      map[string]uint64
		src       beehive.Address
		dest      beehive.Address
		amount    uint64
		wantErr   *errors.Error
		wantAlice uint64
		wantBob   uint64
	}{
		"simple transfer": {
			init:      map[string]uint64{string(alice): 100},
			src:       alice,
			dest:      bob,
			amount:    40,
			wantAlice: 60,
			wantBob:   40,
		},
		"transfer everything": {
			init:      map[string]uint64{string(alice): 100, string(bob): 1},
			src:       alice,
			dest:      bob,
			amount:    100,
			wantAlice: 0,
			wantBob:   101,
		},
		"zero amount": {
			init:      map[string]uint64{string(alice): 100},
			src:       alice,
			dest:      bob,
			amount:    0,
			wantErr:   errors.ErrAmount,
			wantAlice: 100,
		},
		"missing sender": {
			src:     alice,
			dest:    bob,
			amount:  1,
			wantErr: errors.ErrNotFound,
		},
		"insufficient funds": {
			init:      map[string]uint64{string(alice): 10},
			src:       alice,
			dest:      bob,
			amount:    11,
			wantErr:   errors.ErrInsufficientAmount,
			wantAlice: 10,
		},
		"recipient overflow leaves sender untouched": {
			init:      map[string]uint64{string(alice): 10, string(bob): math.MaxUint64},
			src:       alice,
			dest:      bob,
			amount:    5,
			wantErr:   errors.ErrOverflow,
			wantAlice: 10,
			wantBob:   math.MaxUint64,
		},
		"self transfer keeps balance": {
			init:      map[string]uint64{string(alice): 10},
			src:       alice,
			dest:      alice,
			amount:    10,
			wantAlice: 10,
		},
		"self transfer beyond balance": {
			init:      map[string]uint64{string(alice): 10},
			src:       alice,
			dest:      alice,
			amount:    11,
			wantErr:   errors.ErrInsufficientAmount,
			wantAlice: 10,
		},
		"invalid destination": {
			init:      map[string]uint64{string(alice): 10},
			src:       alice,
			dest:      beehive.Address("short"),
			amount:    1,
			wantErr:   errors.ErrInput,
			wantAlice: 10,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			bucket := NewBucket()
			for addr, balance := range tc.init {
				require.NoError(t, bucket.Save(db, beehive.Address(addr), &Wallet{Balance: balance}))
			}
			ctrl := NewController(bucket)

			err := ctrl.MoveCoins(db, tc.src, tc.dest, tc.amount)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			} else {
				require.NoError(t, err)
			}

			got, err := ctrl.Balance(db, alice)
			require.NoError(t, err)
			assert.Equal(t, tc.wantAlice, got)
			got, err = ctrl.Balance(db, bob)
			require.NoError(t, err)
			assert.Equal(t, tc.wantBob, got)
		})
	}
}

func TestIssueCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	addr := hivetest.NewCondition().Address()

	require.NoError(t, ctrl.IssueCoins(db, addr, 5))
	require.NoError(t, ctrl.IssueCoins(db, addr, 7))
	got, err := ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), got)

	err = ctrl.IssueCoins(db, addr, math.MaxUint64)
	assert.True(t, errors.ErrOverflow.Is(err))
	got, err = ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), got)
}

func TestWalletSerialization(t *testing.T) {
	w := Wallet{Balance: 1234567}
	raw, err := w.Marshal()
	require.NoError(t, err)

	var got Wallet
	require.NoError(t, got.Unmarshal(raw))
	assert.Equal(t, w, got)
}
