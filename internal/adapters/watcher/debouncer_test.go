package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/testbridge/internal/adapters/watcher"
)

// recorder collects callback batches safely across goroutines.
type recorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.batches...)
}

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/project/src/app/app.component.ts")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, [][]string{{"/project/src/app/app.component.ts"}}, rec.snapshot())
	})
}

func TestDebouncer_Add_Coalesced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/project/src/b.ts")
		d.Add("/project/src/a.ts")
		d.Add("/project/src/b.ts")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		batches := rec.snapshot()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/project/src/a.ts", "/project/src/b.ts"}, batches[0])
	})
}

func TestDebouncer_Add_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/project/src/a.ts")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/src/b.ts")
		time.Sleep(50 * time.Millisecond)

		synctest.Wait()
		assert.Empty(t, rec.snapshot())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_SeparateBatches(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/project/src/a.ts")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add("/project/src/b.ts")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/project/src/a.ts"}, {"/project/src/b.ts"}}, rec.snapshot())
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/project/src/a.ts")
		d.Flush()
		require.Len(t, rec.snapshot(), 1)

		// The stopped timer must not deliver the batch again.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

	d.Flush()
	assert.Empty(t, rec.snapshot())
}

func TestDebouncer_Flush_AfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("/project/src/a.ts")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		require.Len(t, rec.snapshot(), 1)

		d.Flush()
		assert.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("/project/src/a.ts")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("/project/src/b.ts")
		d.Flush()
	})
}
