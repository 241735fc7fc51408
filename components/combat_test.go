package components

import (
	"testing"

	"dodgetrainer/vmath"
)

// slot converts a charge fraction to Q32.32
func slot(f float64) int64 {
	return vmath.FromFloat(f)
}

func TestClipCanFireNeedsFullSlot(t *testing.T) {
	clip := NewFullClip()
	if !clip.CanFire() {
		t.Error("Full clip cannot fire")
	}

	// Plenty of total charge but no single full slot
	clip.Slots = [3]int64{slot(0.9), slot(0.9), slot(0.9)}
	if clip.CanFire() {
		t.Error("Clip without a full slot allowed a burst start")
	}

	clip.Slots = [3]int64{slot(1.0), 0, 0}
	if !clip.CanFire() {
		t.Error("Clip with one full slot refused a burst start")
	}
}

func TestClipConsumeDrainsRightmostFullSlot(t *testing.T) {
	clip := NewFullClip()
	if !clip.Consume() {
		t.Fatal("Full clip refused consume")
	}
	if clip.Slots[2] != 0 {
		t.Errorf("Rightmost slot holds %.3f after consume, want 0",
			vmath.ToFloat(clip.Slots[2]))
	}
	if clip.Slots[0] != slot(1.0) || clip.Slots[1] != slot(1.0) {
		t.Error("Consume touched slots left of the rightmost")
	}
}

func TestClipConsumeTransfersFromLeft(t *testing.T) {
	clip := AmmoClip{Slots: [3]int64{slot(1.0), slot(0.5), slot(0.5)}}
	if !clip.Consume() {
		t.Fatal("Clip with 2.0 total charge refused consume")
	}

	// Rightmost partial empties; the missing half comes from slot 1
	if clip.Slots[2] != 0 || clip.Slots[1] != 0 {
		t.Errorf("Expected slots 1 and 2 empty, got %.3f and %.3f",
			vmath.ToFloat(clip.Slots[1]), vmath.ToFloat(clip.Slots[2]))
	}
	if clip.Slots[0] != slot(1.0) {
		t.Errorf("Leftmost slot drained to %.3f, want 1.0",
			vmath.ToFloat(clip.Slots[0]))
	}
}

func TestClipConsumeTransferSpansSlots(t *testing.T) {
	clip := AmmoClip{Slots: [3]int64{slot(0.8), slot(0.3), slot(0.2)}}
	if !clip.Consume() {
		t.Fatal("Clip with 1.3 total charge refused consume")
	}
	if clip.Slots[2] != 0 || clip.Slots[1] != 0 {
		t.Error("Transfer left charge in the right slots")
	}
	if !fixedNear(clip.Slots[0], slot(0.3)) {
		t.Errorf("Leftmost slot holds %.3f, want 0.3",
			vmath.ToFloat(clip.Slots[0]))
	}
}

func TestClipConsumeRefusesBelowOneSegment(t *testing.T) {
	clip := AmmoClip{Slots: [3]int64{slot(0.3), slot(0.3), slot(0.3)}}
	if clip.Consume() {
		t.Error("Clip with 0.9 total charge allowed consume")
	}
	for i, s := range clip.Slots {
		if s != slot(0.3) {
			t.Errorf("Refused consume changed slot %d to %.3f", i, vmath.ToFloat(s))
		}
	}
}

// fixedNear tolerates one-ULP drift from FromFloat conversions
func fixedNear(a, b int64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= 1
}

func TestBurstDone(t *testing.T) {
	b := Burst{Count: 3}
	if b.Done() {
		t.Error("Fresh burst with pending shots reported done")
	}
	b.Next = 2
	if b.Done() {
		t.Error("Burst with one pending shot reported done")
	}
	b.Next = 3
	if !b.Done() {
		t.Error("Exhausted burst not reported done")
	}
}

func TestBurstDoneEmpty(t *testing.T) {
	var b Burst
	if !b.Done() {
		t.Error("Zero-value burst must be done")
	}
}
