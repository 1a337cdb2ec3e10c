package util

import (
	"fmt"
	"runtime/debug"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DeferRecover defer recover from panic.
func DeferRecover(tag string, handlePanic func(error)) func() {
	return func() {
		if r := recover(); r != nil {
			log.Errorf("%s, recover from: %v\n%s", tag, r, debug.Stack())
			if handlePanic != nil {
				handlePanic(errors.Errorf("panic: %v", r))
			}
		}
	}
}

// WithRecover recover from panic.
func WithRecover(tag string, f func(), handlePanic func(error)) {
	defer DeferRecover(tag, handlePanic)()

	f()
}

// Go is a wrapper of goroutine with recover.
func Go(name string, f func(), handlePanic func(error)) {
	go WithRecover(fmt.Sprintf("goroutine %s", name), f, handlePanic)
}
