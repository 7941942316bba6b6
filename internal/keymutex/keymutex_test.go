package keymutex

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockSerializesSameKey(t *testing.T) {
	km := New()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			unlock := km.Lock("ws-1:visit-1")
			defer unlock()

			counter++
		}()
	}

	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestLockDifferentKeysDoNotBlock(t *testing.T) {
	km := New()

	unlockA := km.Lock("a")

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("b")
		unlockB()
		close(done)
	}()

	<-done
	unlockA()
}

func TestEntriesAreReleased(t *testing.T) {
	km := New()

	unlock := km.Lock("a")
	unlock()

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}
