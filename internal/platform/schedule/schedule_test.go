package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestAfter_Fires(t *testing.T) {
	done := make(chan struct{})
	h := After(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not fire")
	}
	if !h.Fired() {
		t.Error("expected handle to report fired")
	}
}

func TestAfter_ZeroDelayRunsSynchronously(t *testing.T) {
	var ran atomic.Bool
	h := After(0, func() { ran.Store(true) })
	if !ran.Load() {
		t.Error("expected synchronous execution for zero delay")
	}
	if !h.Fired() {
		t.Error("expected handle to report fired")
	}
}

func TestCancel_PreventsCallback(t *testing.T) {
	var ran atomic.Bool
	h := After(20*time.Millisecond, func() { ran.Store(true) })
	if !h.Cancel() {
		t.Fatal("expected cancel to report the callback was pending")
	}

	time.Sleep(50 * time.Millisecond)
	if ran.Load() {
		t.Error("cancelled callback still ran")
	}
}

func TestCancel_AfterFireIsNoOp(t *testing.T) {
	done := make(chan struct{})
	h := After(time.Millisecond, func() { close(done) })
	<-done
	if h.Cancel() {
		t.Error("cancelling a fired handle should report false")
	}
}

func TestCancel_Idempotent(t *testing.T) {
	h := After(time.Hour, func() {})
	if !h.Cancel() {
		t.Fatal("first cancel should succeed")
	}
	if h.Cancel() {
		t.Error("second cancel should report false")
	}
}
