package rewardpool

import (
	"encoding/json"
	"testing"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/hivetest"
	"github.com/beehive-network/beehive/hivetest/assert"
	"github.com/beehive-network/beehive/store"
)

func TestPoolAddressIsStable(t *testing.T) {
	assert.Equal(t, beehive.NewCondition("rewardpool", "pool", []byte("reward_pool")).Address(), PoolAddress)
	assert.Nil(t, PoolAddress.Validate())
}

func TestStateValidate(t *testing.T) {
	assert.Nil(t, (&State{Owner: hivetest.NewCondition().Address()}).Validate())
	assert.IsErr(t, errors.ErrInput, (&State{}).Validate())
}

func TestRecordsRoundTrip(t *testing.T) {
	state := State{Owner: hivetest.NewCondition().Address(), Paused: true}
	raw, err := state.Marshal()
	assert.Nil(t, err)
	var gotState State
	assert.Nil(t, gotState.Unmarshal(raw))
	assert.Equal(t, state, gotState)

	pool := RewardPool{TotalDistributed: 99}
	raw, err = pool.Marshal()
	assert.Nil(t, err)
	var gotPool RewardPool
	assert.Nil(t, gotPool.Unmarshal(raw))
	assert.Equal(t, pool, gotPool)
}

func TestBucketsRequireInitialization(t *testing.T) {
	db := store.MemStore()
	_, err := NewStateBucket().Get(db)
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = NewPoolBucket().Get(db)
	assert.IsErr(t, errors.ErrNotFound, err)

	assert.Nil(t, NewPoolBucket().Create(db, &RewardPool{}))
	assert.IsErr(t, ErrAlreadyInitialized, NewPoolBucket().Create(db, &RewardPool{}))
}

func TestRequireIdentity(t *testing.T) {
	a := hivetest.NewCondition().Address()
	b := hivetest.NewCondition().Address()

	assert.Nil(t, RequireIdentity(a, a))
	assert.IsErr(t, errors.ErrUnauthorized, RequireIdentity(b, a))
	assert.IsErr(t, errors.ErrUnauthorized, RequireIdentity(nil, a))
	assert.IsErr(t, errors.ErrUnauthorized, RequireIdentity(nil, nil))
}

func TestQueries(t *testing.T) {
	f := newFixture(t)
	owner := hivetest.NewCondition().Address()
	f.mustDeliver(nil, &InitializeMsg{Owner: owner})

	qr := beehive.NewQueryRouter()
	RegisterQuery(qr)

	res, err := qr.Handler("/rewardpool/state").Query(f.db, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	var state State
	assert.Nil(t, state.Unmarshal(res[0].Value))
	assert.Equal(t, owner, state.Owner)

	res, err = qr.Handler("/rewardpool/pool").Query(f.db, []byte("ignored"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	var pool RewardPool
	assert.Nil(t, pool.Unmarshal(res[0].Value))
	assert.Equal(t, uint64(0), pool.TotalDistributed)
}

func TestGenesis(t *testing.T) {
	owner := hivetest.NewCondition().Address()

	cases := map[string]struct {
		genesis   string
		wantErr   *errors.Error
		wantOwner beehive.Address
	}{
		"no section": {
			genesis: `{}`,
		},
		"owner given": {
			genesis:   `{"rewardpool": {"owner": "` + owner.String() + `"}}`,
			wantOwner: owner,
		},
		"malformed owner": {
			genesis: `{"rewardpool": {"owner": "zz"}}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts beehive.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			err := Initializer{}.FromGenesis(opts, db)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)

			state, err := NewStateBucket().Get(db)
			if tc.wantOwner == nil {
				assert.IsErr(t, errors.ErrNotFound, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.wantOwner, state.Owner)
			_, err = NewPoolBucket().Get(db)
			assert.Nil(t, err)
		})
	}
}
