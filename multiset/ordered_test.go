package multiset

import "testing"

func TestOrdered_Threshold(t *testing.T) {
	// Multiset {10:x1, 8:x2, 6:x3, 5:x1}: event 10 was seen once,
	// event 8 twice, and so on. Seeing event 10 implies seeing all
	// events below it.
	m := NewOrdered()
	m.Insert(10)
	m.InsertN(8, 2)
	m.InsertN(6, 3)
	m.Insert(5)

	tests := []struct {
		threshold uint64
		value     uint64
		ok        bool
	}{
		{threshold: 1, value: 10, ok: true},
		{threshold: 2, value: 8, ok: true},
		{threshold: 3, value: 8, ok: true},
		{threshold: 4, value: 6, ok: true},
		{threshold: 5, value: 6, ok: true},
		{threshold: 6, value: 6, ok: true},
		{threshold: 7, value: 5, ok: true},
		{threshold: 8, value: 0, ok: false},
	}

	for _, tt := range tests {
		value, ok := m.Threshold(tt.threshold)
		if value != tt.value || ok != tt.ok {
			t.Errorf("Threshold(%d): expected (%d, %v), got (%d, %v)",
				tt.threshold, tt.value, tt.ok, value, ok)
		}
	}
}

func TestOrdered_Threshold_Empty(t *testing.T) {
	m := NewOrdered()

	for _, threshold := range []uint64{1, 2, 100} {
		if _, ok := m.Threshold(threshold); ok {
			t.Errorf("Empty multiset should have no threshold value for t=%d", threshold)
		}
	}
}

func TestOrdered_Threshold_SingleValue(t *testing.T) {
	// A single value carrying multiplicity >= t is returned without
	// contributions from smaller values.
	m := NewOrdered()
	m.InsertN(7, 5)
	m.Insert(3)

	if value, ok := m.Threshold(5); !ok || value != 7 {
		t.Errorf("Expected (7, true), got (%d, %v)", value, ok)
	}
	if value, ok := m.Threshold(6); !ok || value != 3 {
		t.Errorf("Expected (3, true), got (%d, %v)", value, ok)
	}
}

func TestOrdered_Threshold_ZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Threshold(0) should panic")
		}
	}()

	m := NewOrdered()
	m.Insert(1)
	m.Threshold(0)
}

func TestOrdered_Insert(t *testing.T) {
	m := NewOrdered()

	m.Insert(3)
	m.Insert(3)
	m.Insert(1)

	if m.Count(3) != 2 {
		t.Errorf("Expected count 2 for value 3, got %d", m.Count(3))
	}
	if m.Count(1) != 1 {
		t.Errorf("Expected count 1 for value 1, got %d", m.Count(1))
	}
	if m.Count(2) != 0 {
		t.Errorf("Expected count 0 for value 2, got %d", m.Count(2))
	}
	if m.Total() != 3 {
		t.Errorf("Expected total 3, got %d", m.Total())
	}
	if m.Len() != 2 {
		t.Errorf("Expected 2 distinct values, got %d", m.Len())
	}
}

func TestOrdered_InsertN_Zero(t *testing.T) {
	m := NewOrdered()
	m.InsertN(5, 0)

	if m.Len() != 0 || m.Total() != 0 {
		t.Error("Inserting zero occurrences should record nothing")
	}
}

func TestOrdered_Max(t *testing.T) {
	m := NewOrdered()

	if _, ok := m.Max(); ok {
		t.Error("Empty multiset should have no max")
	}

	m.Insert(2)
	m.Insert(9)
	m.Insert(4)

	if max, ok := m.Max(); !ok || max != 9 {
		t.Errorf("Expected max (9, true), got (%d, %v)", max, ok)
	}
}
