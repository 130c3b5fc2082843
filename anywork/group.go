package anywork

import "sync"

// WorkGroup counts pending work. Unlike sync.WaitGroup it tolerates new
// work arriving while Sync already waits, which happens when queued work
// spawns more work.
type WorkGroup struct {
	mutex   sync.Mutex
	signal  *sync.Cond
	pending uint64
}

func NewGroup() *WorkGroup {
	group := new(WorkGroup)
	group.signal = sync.NewCond(&group.mutex)
	return group
}

func (it *WorkGroup) add() {
	it.mutex.Lock()
	defer it.mutex.Unlock()
	it.pending += 1
}

func (it *WorkGroup) done() {
	it.mutex.Lock()
	defer it.mutex.Unlock()
	it.pending -= 1
	if it.pending == 0 {
		it.signal.Broadcast()
	}
}

func (it *WorkGroup) Wait() {
	it.mutex.Lock()
	defer it.mutex.Unlock()
	for it.pending > 0 {
		it.signal.Wait()
	}
}
