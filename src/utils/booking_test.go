package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Fifty concurrent admits against ten slots must admit exactly ten when
// every admit runs under the event's lock.
func TestKeyedMutexAdmitsUpToCapacity(t *testing.T) {
	locks := keyedMutex{locks: make(map[uint]*sync.Mutex)}
	const eventID uint = 7
	const capacity = 10

	var booked int
	var admitted, rejected int
	var resultMu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lock := locks.get(eventID)
			lock.Lock()
			ok := booked < capacity
			if ok {
				booked++
			}
			lock.Unlock()

			resultMu.Lock()
			if ok {
				admitted++
			} else {
				rejected++
			}
			resultMu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, capacity, admitted)
	assert.Equal(t, 40, rejected)
	assert.Equal(t, capacity, booked)
}

func TestKeyedMutexReturnsSameLockPerKey(t *testing.T) {
	locks := keyedMutex{locks: make(map[uint]*sync.Mutex)}

	assert.Same(t, locks.get(1), locks.get(1))
	assert.NotSame(t, locks.get(1), locks.get(2))
}

func TestRetryableTxError(t *testing.T) {
	assert.True(t, retryableTxError(errTest("ERROR: deadlock detected (SQLSTATE 40P01)")))
	assert.True(t, retryableTxError(errTest("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)")))
	assert.False(t, retryableTxError(ErrEventFull))
	assert.False(t, retryableTxError(ErrEventNotFound))
}

type errTest string

func (e errTest) Error() string { return string(e) }
