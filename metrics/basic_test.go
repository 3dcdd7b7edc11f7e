package metrics

import (
	"reflect"
	"sync"
	"testing"
)

func TestBasicProvider_CounterReusedByName(t *testing.T) {
	p := NewBasicProvider()

	c1 := p.Counter("items_started")
	c2 := p.Counter("items_started")
	if reflect.ValueOf(c1).Pointer() != reflect.ValueOf(c2).Pointer() {
		t.Fatalf("expected same counter instance for same name")
	}

	c1.Add(3)
	c2.Add(2)
	if got := p.CounterValue("items_started"); got != 5 {
		t.Fatalf("counter value = %d; want 5", got)
	}

	if got := p.CounterValue("never_created"); got != 0 {
		t.Fatalf("missing counter value = %d; want 0", got)
	}
}

func TestBasicProvider_UpDownCounterMovesBothWays(t *testing.T) {
	p := NewBasicProvider()
	u := p.UpDownCounter("pending")

	u.Add(+3)
	u.Add(-1)
	u.Add(+10)
	if got := p.UpDownValue("pending"); got != 12 {
		t.Fatalf("updown value = %d; want 12", got)
	}
}

func TestBasicProvider_HistogramAggregates(t *testing.T) {
	p := NewBasicProvider()
	h := p.Histogram("durations", WithUnit("seconds"))

	h.Record(2.0)
	h.Record(0.5)
	h.Record(1.0)

	s := p.HistogramSnapshot("durations")
	if s.Count != 3 {
		t.Fatalf("count = %d; want 3", s.Count)
	}
	if s.Sum != 3.5 {
		t.Fatalf("sum = %v; want 3.5", s.Sum)
	}
	if s.Min != 0.5 || s.Max != 2.0 {
		t.Fatalf("min/max = %v/%v; want 0.5/2.0", s.Min, s.Max)
	}
}

func TestBasicProvider_ConcurrentUse(t *testing.T) {
	p := NewBasicProvider()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Counter("shared").Add(1)
			p.UpDownCounter("gauge").Add(1)
			p.Histogram("hist").Record(1)
		}()
	}
	wg.Wait()

	if got := p.CounterValue("shared"); got != 32 {
		t.Fatalf("counter value = %d; want 32", got)
	}
	if got := p.UpDownValue("gauge"); got != 32 {
		t.Fatalf("updown value = %d; want 32", got)
	}
	if got := p.HistogramSnapshot("hist").Count; got != 32 {
		t.Fatalf("histogram count = %d; want 32", got)
	}
}
