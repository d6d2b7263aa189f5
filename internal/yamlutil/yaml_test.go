package yamlutil

import (
	"bytes"
	"errors"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal([]byte("name: doc\ncount: 3\n"), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if s.Name != "doc" || s.Count != 3 {
		t.Errorf("got %+v", s)
	}
}

func TestUnmarshal_Validation(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal(nil, &s); !errors.Is(err, ErrNilData) {
		t.Errorf("nil data: error = %v, want ErrNilData", err)
	}
	if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil dest: error = %v, want ErrNilDestination", err)
	}

	big := bytes.Repeat([]byte("a"), MaxInputSize+1)
	if err := Unmarshal(big, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversized: error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalStrict_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var s sample
	err := UnmarshalStrict([]byte("name: x\nbogus: y\n"), &s)
	if err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	in := sample{Name: "doc", Count: 7}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out sample
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
