package constants

import (
	"testing"
	"time"
)

// TestScrollSettleDelayDerivation verifies the duration constant matches its Ms source
func TestScrollSettleDelayDerivation(t *testing.T) {
	expected := time.Duration(ScrollSettleMs) * time.Millisecond
	if ScrollSettleDelay != expected {
		t.Errorf("Expected settle delay %v, got %v", expected, ScrollSettleDelay)
	}
}

// TestEventBufferMask verifies the mask matches the queue size power of two
func TestEventBufferMask(t *testing.T) {
	if EventQueueSize&(EventQueueSize-1) != 0 {
		t.Errorf("Expected EventQueueSize to be a power of two, got %d", EventQueueSize)
	}
	if EventBufferMask != EventQueueSize-1 {
		t.Errorf("Expected mask %d, got %d", EventQueueSize-1, EventBufferMask)
	}
}

// TestThresholdOrdering verifies the zones nest in the order the evaluation relies on
func TestThresholdOrdering(t *testing.T) {
	if TopZone <= ScrollThreshold {
		t.Errorf("Expected TopZone (%d) above ScrollThreshold (%d)", TopZone, ScrollThreshold)
	}
	if HideDepth <= ProximityZone {
		t.Errorf("Expected HideDepth (%d) beyond ProximityZone (%d)", HideDepth, ProximityZone)
	}
}
