package service

import "sync"

// KeyedMutex serializes work per key so a recompute and an approval
// transition for the same account never interleave, while different accounts
// proceed in parallel.
type KeyedMutex struct {
	locks sync.Map // key -> *sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

func (k *KeyedMutex) Lock(key string) func() {
	value, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
