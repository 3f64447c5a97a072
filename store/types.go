package store

import "github.com/beehive-network/beehive"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = beehive.ReadOnlyKVStore
type SetDeleter = beehive.SetDeleter
type KVStore = beehive.KVStore
type Batch = beehive.Batch
type CacheableKVStore = beehive.CacheableKVStore
type KVCacheWrap = beehive.KVCacheWrap
type CommitKVStore = beehive.CommitKVStore
type CommitID = beehive.CommitID
type Model = beehive.Model

// Pair constructs a model from a key-value pair
var Pair = beehive.Pair
