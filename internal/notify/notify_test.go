package notify

import (
	"testing"
	"time"
)

func newTestCenter() (*Center, *time.Time) {
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewCenter()
	c.now = func() time.Time { return clock }
	return c, &clock
}

func TestCenter_DedupesWithinWindow(t *testing.T) {
	c, clock := newTestCenter()

	c.Error("Error de red")
	c.Error("Error de red")
	c.Error("Error de red")

	got := c.Pending()
	if len(got) != 1 {
		t.Fatalf("pending = %d messages, want 1 after dedupe", len(got))
	}
	if got[0].Level != LevelError || got[0].Text != "Error de red" {
		t.Fatalf("message = %+v, want error toast", got[0])
	}

	// Same text after the window passes goes through again.
	*clock = clock.Add(defaultDedupeWindow + time.Second)
	c.Error("Error de red")
	if got := c.Pending(); len(got) != 1 {
		t.Fatalf("pending = %d messages, want 1 after window elapsed", len(got))
	}
}

func TestCenter_DistinctMessagesAllPass(t *testing.T) {
	c, _ := newTestCenter()

	c.Success("Autor creado")
	c.Info("Actualizando…")
	c.Error("Error de red")

	got := c.Pending()
	if len(got) != 3 {
		t.Fatalf("pending = %d messages, want 3", len(got))
	}
	if got[0].Level != LevelSuccess || got[2].Level != LevelError {
		t.Fatalf("order not preserved: %+v", got)
	}
}

func TestCenter_PendingDrains(t *testing.T) {
	c, _ := newTestCenter()

	c.Info("uno")
	if got := c.Pending(); len(got) != 1 {
		t.Fatalf("pending = %d, want 1", len(got))
	}
	if got := c.Pending(); got != nil {
		t.Fatalf("second drain = %v, want nil", got)
	}
}

func TestCenter_CapsBacklog(t *testing.T) {
	c, clock := newTestCenter()

	for i := 0; i < maxPending+10; i++ {
		// Advance the clock so dedupe never engages for the same text.
		*clock = clock.Add(defaultDedupeWindow)
		c.Info("mensaje")
	}
	if got := c.Pending(); len(got) != maxPending {
		t.Fatalf("pending = %d, want capped at %d", len(got), maxPending)
	}
}

func TestCenter_IgnoresEmptyText(t *testing.T) {
	c, _ := newTestCenter()
	c.Error("")
	if got := c.Pending(); got != nil {
		t.Fatalf("pending = %v, want nil for empty text", got)
	}
}
