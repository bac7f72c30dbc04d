package core

import "testing"

func TestInputFrameKeepsLastMove(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionUndo)
	f.Set(ActionUp)

	if f.Has(ActionLeft) {
		t.Error("a later move should replace Left")
	}
	if !f.Has(ActionUp) || !f.Has(ActionUndo) {
		t.Errorf("frame = %v, want Up and Undo", f.Actions)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) || !f.Empty() {
		t.Error("zero frame should be empty")
	}
	f.Set(ActionDown)
	if !f.Has(ActionDown) {
		t.Error("Set() on a zero frame should work")
	}
}
