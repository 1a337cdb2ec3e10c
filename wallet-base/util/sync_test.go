package util_test

import (
	"fmt"
	"testing"

	"ican-wallet/wallet-base/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchGatherInOrder(t *testing.T) {
	for _, workers := range []int{1, 3, 7, 64} {
		var gathered []int
		err := util.NewBatch(20, func(idx int) (interface{}, error) {
			return idx * idx, nil
		}, func(idx int, data interface{}) error {
			assert.Equal(t, idx*idx, data)
			gathered = append(gathered, idx)
			return nil
		}).WithWorkers(workers).Do()
		require.NoError(t, err)

		require.Len(t, gathered, 20)
		for i, idx := range gathered {
			assert.Equal(t, i, idx)
		}
	}
}

func TestBatchWorkError(t *testing.T) {
	var gathered int
	err := util.NewBatch(10, func(idx int) (interface{}, error) {
		if idx == 5 {
			return nil, fmt.Errorf("bad index")
		}
		return idx, nil
	}, func(int, interface{}) error {
		gathered++
		return nil
	}).WithWorkers(4).Do()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 5")
	// the first group is gathered before the failing one.
	assert.Equal(t, 4, gathered)
}

func TestBatchWorkPanic(t *testing.T) {
	err := util.BatchDo(3, func(idx int) (interface{}, error) {
		if idx == 1 {
			panic("boom")
		}
		return idx, nil
	}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, err.Error(), "index 1")
}

func TestBatchGatherError(t *testing.T) {
	err := util.BatchDo(3, func(idx int) (interface{}, error) {
		return idx, nil
	}, func(idx int, _ interface{}) error {
		if idx == 2 {
			return fmt.Errorf("stop")
		}
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gather at index 2")
}

func TestBatchEmpty(t *testing.T) {
	called := false
	err := util.BatchDo(0, func(int) (interface{}, error) {
		called = true
		return nil, nil
	}, nil)
	require.NoError(t, err)
	assert.False(t, called)
}
