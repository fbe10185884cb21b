package daemon

import (
	"sync"
	"testing"
	"time"
)

// ============================================================================
// Basic Metrics Tests
// ============================================================================

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	if m == nil {
		t.Fatal("Expected NewMetrics to return non-nil")
	}

	// Verify all counters start at zero
	if m.EventsSent.Load() != 0 {
		t.Errorf("Expected EventsSent to be 0, got %d", m.EventsSent.Load())
	}
	if m.EventsReceived.Load() != 0 {
		t.Errorf("Expected EventsReceived to be 0, got %d", m.EventsReceived.Load())
	}
	if m.RefreshesTotal.Load() != 0 {
		t.Errorf("Expected RefreshesTotal to be 0, got %d", m.RefreshesTotal.Load())
	}
	if m.ConnectedClients.Load() != 0 {
		t.Errorf("Expected ConnectedClients to be 0, got %d", m.ConnectedClients.Load())
	}

	// Verify StartTime is set to a recent time (within last second)
	if time.Since(m.StartTime) > time.Second {
		t.Errorf("Expected StartTime to be recent, got %v", m.StartTime)
	}
}

func TestIncCounters(t *testing.T) {
	m := NewMetrics()

	m.IncEventsSent()
	if m.EventsSent.Load() != 1 {
		t.Errorf("Expected EventsSent to be 1, got %d", m.EventsSent.Load())
	}
	for i := 0; i < 10; i++ {
		m.IncEventsSent()
	}
	if m.EventsSent.Load() != 11 {
		t.Errorf("Expected EventsSent to be 11, got %d", m.EventsSent.Load())
	}

	m.IncEventsReceived()
	if m.EventsReceived.Load() != 1 {
		t.Errorf("Expected EventsReceived to be 1, got %d", m.EventsReceived.Load())
	}

	m.IncRefreshesTotal()
	if m.RefreshesTotal.Load() != 1 {
		t.Errorf("Expected RefreshesTotal to be 1, got %d", m.RefreshesTotal.Load())
	}
}

func TestSetConnectedClients(t *testing.T) {
	m := NewMetrics()

	// Set to various values
	m.SetConnectedClients(5)
	if m.ConnectedClients.Load() != 5 {
		t.Errorf("Expected ConnectedClients to be 5, got %d", m.ConnectedClients.Load())
	}

	m.SetConnectedClients(0)
	if m.ConnectedClients.Load() != 0 {
		t.Errorf("Expected ConnectedClients to be 0, got %d", m.ConnectedClients.Load())
	}

	m.SetConnectedClients(100)
	if m.ConnectedClients.Load() != 100 {
		t.Errorf("Expected ConnectedClients to be 100, got %d", m.ConnectedClients.Load())
	}
}

func TestGetSnapshot(t *testing.T) {
	m := NewMetrics()

	// Set some values
	m.IncEventsSent()
	m.IncEventsSent()
	m.IncEventsReceived()
	m.IncRefreshesTotal()
	m.SetConnectedClients(3)

	// Give it a moment so uptime is measurable
	time.Sleep(10 * time.Millisecond)

	snapshot := m.GetSnapshot()

	// Verify all fields
	if snapshot.EventsSent != 2 {
		t.Errorf("Expected EventsSent to be 2, got %d", snapshot.EventsSent)
	}
	if snapshot.EventsReceived != 1 {
		t.Errorf("Expected EventsReceived to be 1, got %d", snapshot.EventsReceived)
	}
	if snapshot.RefreshesTotal != 1 {
		t.Errorf("Expected RefreshesTotal to be 1, got %d", snapshot.RefreshesTotal)
	}
	if snapshot.ConnectedClients != 3 {
		t.Errorf("Expected ConnectedClients to be 3, got %d", snapshot.ConnectedClients)
	}

	// Verify StartTime matches
	if !snapshot.StartTime.Equal(m.StartTime) {
		t.Errorf("Expected StartTime to match, got %v vs %v", snapshot.StartTime, m.StartTime)
	}

	// Verify Uptime is populated
	if snapshot.Uptime == "" {
		t.Error("Expected Uptime to be populated")
	}
}

// ============================================================================
// Concurrency Tests (Race Detector)
// ============================================================================

func TestMetricsConcurrency_AllOperations(t *testing.T) {
	m := NewMetrics()

	// Number of goroutines and operations per goroutine
	numGoroutines := 100
	opsPerGoroutine := 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 4) // 4 different operations

	// Concurrently increment EventsSent
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < opsPerGoroutine; j++ {
				m.IncEventsSent()
			}
		}()
	}

	// Concurrently increment EventsReceived
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < opsPerGoroutine; j++ {
				m.IncEventsReceived()
			}
		}()
	}

	// Concurrently increment RefreshesTotal
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < opsPerGoroutine; j++ {
				m.IncRefreshesTotal()
			}
		}()
	}

	// Concurrently set ConnectedClients
	for i := 0; i < numGoroutines; i++ {
		go func(val int32) {
			defer wg.Done()
			for j := 0; j < opsPerGoroutine; j++ {
				m.SetConnectedClients(val)
			}
		}(int32(i))
	}

	wg.Wait()

	// Verify counts are correct
	expectedCount := int64(numGoroutines * opsPerGoroutine)
	if m.EventsSent.Load() != expectedCount {
		t.Errorf("Expected EventsSent to be %d, got %d", expectedCount, m.EventsSent.Load())
	}
	if m.EventsReceived.Load() != expectedCount {
		t.Errorf("Expected EventsReceived to be %d, got %d", expectedCount, m.EventsReceived.Load())
	}
	if m.RefreshesTotal.Load() != expectedCount {
		t.Errorf("Expected RefreshesTotal to be %d, got %d", expectedCount, m.RefreshesTotal.Load())
	}

	// ConnectedClients is set (not incremented), so it should be one of the values
	clientCount := m.ConnectedClients.Load()
	if clientCount < 0 || clientCount >= int32(numGoroutines) {
		t.Errorf("Expected ConnectedClients to be in range [0, %d), got %d", numGoroutines, clientCount)
	}
}

func TestMetricsSnapshot_IsImmutable(t *testing.T) {
	m := NewMetrics()

	m.IncEventsSent()
	snapshot1 := m.GetSnapshot()

	// Change metrics after taking snapshot
	m.IncEventsSent()
	m.IncEventsSent()

	// Verify snapshot hasn't changed
	if snapshot1.EventsSent != 1 {
		t.Errorf("Snapshot should be immutable, expected EventsSent=1, got %d", snapshot1.EventsSent)
	}

	// Take another snapshot
	snapshot2 := m.GetSnapshot()
	if snapshot2.EventsSent != 3 {
		t.Errorf("Second snapshot should reflect changes, expected EventsSent=3, got %d", snapshot2.EventsSent)
	}
}
