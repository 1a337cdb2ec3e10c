package util

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

type BatchWork func(idx int) (interface{}, error)
type BatchGather func(idx int, data interface{}) error

// DefaultBatchWorkers is the number of works run at the same time.
func DefaultBatchWorkers() int {
	return runtime.NumCPU() * 8
}

// BatchDo does batch, gather is called in the same goroutine as BatchDo in order.
func BatchDo(count int, work BatchWork, gather BatchGather) error {
	return NewBatch(count, work, gather).Do()
}

// Batch runs count works in groups of workers. Results of a group are
// gathered in index order once the whole group is done.
type Batch struct {
	count   int
	workers int
	work    BatchWork
	gather  BatchGather
}

func NewBatch(count int, work BatchWork, gather BatchGather) *Batch {
	return &Batch{
		count:   count,
		workers: DefaultBatchWorkers(),
		work:    work,
		gather:  gather,
	}
}

// WithWorkers sets the group size, values below 1 are ignored.
func (b *Batch) WithWorkers(n int) *Batch {
	if n > 0 {
		b.workers = n
	}
	return b
}

func (b *Batch) Do() error {
	if b.count <= 0 {
		return nil
	}

	var (
		groupSize = b.workers
		datas     = make([]interface{}, groupSize)
		errs      = make([]error, groupSize)
	)

	for start := 0; start < b.count; start += groupSize {
		end := start + groupSize
		if end > b.count {
			end = b.count
		}

		var wg sync.WaitGroup
		for idx := start; idx < end; idx++ {
			wg.Add(1)

			workIdx := idx
			dataIdx := idx - start
			Go("Batch.do", func() {
				b.do(workIdx, dataIdx, datas, errs)
				wg.Done()
			}, func(err error) {
				datas[dataIdx] = nil
				errs[dataIdx] = err
				wg.Done()
			})
		}
		wg.Wait()

		for i, err := range errs[:end-start] {
			if err != nil {
				return errors.Wrapf(err, "batch work at index %d failed", start+i)
			}
		}

		if b.gather == nil {
			continue
		}

		for i, data := range datas[:end-start] {
			err := b.gather(start+i, data)
			if err != nil {
				return errors.Wrapf(err, "batch gather at index %d failed", start+i)
			}
		}
	}

	return nil
}

func (b *Batch) do(workIdx, dataIdx int, datas []interface{}, errs []error) {
	data, err := b.work(workIdx)
	datas[dataIdx] = data
	errs[dataIdx] = err
}
