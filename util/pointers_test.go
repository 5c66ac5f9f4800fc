package util

import "testing"

func TestPtr(t *testing.T) {
	v := 42
	p := Ptr(v)
	if *p != 42 {
		t.Errorf("expected *p=42, got %d", *p)
	}

	s := Ptr("hello")
	if *s != "hello" {
		t.Errorf("expected *s=hello, got %s", *s)
	}
}

func TestDeref(t *testing.T) {
	v := 42
	if Deref(&v) != 42 {
		t.Error("expected Deref to return 42")
	}

	var p *int
	if Deref(p) != 0 {
		t.Error("expected Deref of nil to return zero value")
	}

	s := "hello"
	if Deref(&s) != "hello" {
		t.Error("expected Deref to return hello")
	}

	var sp *string
	if Deref(sp) != "" {
		t.Error("expected Deref of nil string pointer to return empty string")
	}
}

func TestIndirect(t *testing.T) {
	if got := Indirect(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}

	if got := Indirect(7); got != 7 {
		t.Errorf("expected non-pointer to pass through, got %v", got)
	}

	if got := Indirect(Ptr(1000)); got != 1000 {
		t.Errorf("expected 1000, got %v", got)
	}

	var nilInt *int
	if got := Indirect(nilInt); got != nil {
		t.Errorf("expected typed nil pointer to become untyped nil, got %#v", got)
	}

	pp := Ptr(Ptr("x"))
	if got := Indirect(pp); got != "x" {
		t.Errorf("expected nested pointers to be followed, got %v", got)
	}

	var nilInner *string
	if got := Indirect(&nilInner); got != nil {
		t.Errorf("expected nil inner pointer to become nil, got %#v", got)
	}
}
