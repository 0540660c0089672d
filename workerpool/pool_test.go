package workerpool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestExecuteRunsEveryJobExactlyOnce(t *testing.T) {
	p := New(4)

	const jobs = 200
	var count int32
	var wg sync.WaitGroup
	wg.Add(jobs)

	for i := 0; i < jobs; i++ {
		p.Execute(func() {
			atomic.AddInt32(&count, 1)
			wg.Done()
		})
	}

	wg.Wait()
	p.Close()

	if got := atomic.LoadInt32(&count); got != jobs {
		t.Fatalf("expected %d completed jobs, got %d", jobs, got)
	}
}

func TestCloseWaitsForInFlightJobs(t *testing.T) {
	p := New(2)

	var done int32
	p.Execute(func() {
		time.Sleep(20 * time.Millisecond)
		atomic.StoreInt32(&done, 1)
	})

	p.Close()

	if atomic.LoadInt32(&done) != 1 {
		t.Fatal("expected Close to block until the in-flight job finished")
	}
}

func TestExecuteAfterCloseAnyWorkerPanics(t *testing.T) {
	p := New(1)
	p.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("expected Execute on a closed pool to panic")
		}
	}()
	p.Execute(func() {})
}

func TestNewPanicsOnNonPositiveCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected New(0) to panic")
		}
	}()
	New(0)
}

func TestWithMetricsHooksFireAroundEachJob(t *testing.T) {
	var starts, ends int32
	p := New(2, WithMetrics(
		func() { atomic.AddInt32(&starts, 1) },
		func() { atomic.AddInt32(&ends, 1) },
	))

	var wg sync.WaitGroup
	wg.Add(1)
	p.Execute(func() { wg.Done() })
	wg.Wait()
	p.Close()

	if atomic.LoadInt32(&starts) != 1 || atomic.LoadInt32(&ends) != 1 {
		t.Fatalf("expected one start and one end, got starts=%d ends=%d", starts, ends)
	}
}
