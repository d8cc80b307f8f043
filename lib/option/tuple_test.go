// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

package option_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/anddam/kakoune/lib/option"
)

func TestPairRoundTrip(t *testing.T) {
	codec := option.PairCodec[int, bool]{First: option.Int{}, Second: option.Bool{}}
	value := option.Pair[int, bool]{First: 42, Second: true}
	text := codec.Format(value)
	if text != "42|true" {
		t.Fatalf("Format = %q, want %q", text, "42|true")
	}
	got, err := codec.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if got != value {
		t.Errorf("round trip = %v, want %v", got, value)
	}
}

func TestTripleArity(t *testing.T) {
	codec := option.TripleCodec[int, int, int]{
		First:  option.Int{},
		Second: option.Int{},
		Third:  option.Int{},
	}
	tests := []struct {
		name    string
		text    string
		want    option.Triple[int, int, int]
		wantErr string
	}{
		{name: "exact", text: "1|2|3", want: option.Triple[int, int, int]{First: 1, Second: 2, Third: 3}},
		{name: "too-few", text: "1|2", wantErr: "not enough elements in tuple"},
		{name: "empty", text: "", wantErr: "not enough elements in tuple"},
		{name: "too-many", text: "1|2|3|4", wantErr: "too many elements in tuple"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Parse(tt.text)
			if tt.wantErr != "" {
				if !errors.Is(err, option.ErrInvalidFormat) {
					t.Fatalf("Parse(%q) = %v, want ErrInvalidFormat", tt.text, err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error message = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// A tuple slot whose element encoding contains '|' must survive the
// tuple escaping layer.
func TestTupleNestedSeparator(t *testing.T) {
	flags := option.Flags[option.DebugFlags]{Desc: []option.Desc[option.DebugFlags]{
		{Value: option.DebugHooks, Name: "hooks"},
		{Value: option.DebugShell, Name: "shell"},
	}}
	codec := option.PairCodec[option.DebugFlags, int]{First: flags, Second: option.Int{}}
	value := option.Pair[option.DebugFlags, int]{
		First:  option.DebugHooks | option.DebugShell,
		Second: 9,
	}
	text := codec.Format(value)
	if text != `hooks\|shell|9` {
		t.Fatalf("Format = %q, want %q", text, `hooks\|shell|9`)
	}
	got, err := codec.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if got != value {
		t.Errorf("round trip = %v, want %v", got, value)
	}
}

func TestTupleSlotErrorPropagates(t *testing.T) {
	codec := option.PairCodec[int, bool]{First: option.Int{}, Second: option.Bool{}}
	if _, err := codec.Parse("1|maybe"); !errors.Is(err, option.ErrInvalidFormat) {
		t.Errorf("Parse(1|maybe) = %v, want ErrInvalidFormat", err)
	}
}

func TestTupleTypeName(t *testing.T) {
	pair := option.PairCodec[int, bool]{First: option.Int{}, Second: option.Bool{}}
	if got := pair.TypeName(); got != "int-bool-tuple" {
		t.Errorf("TypeName() = %q, want %q", got, "int-bool-tuple")
	}
	triple := option.TripleCodec[int, int, bool]{
		First:  option.Int{},
		Second: option.Int{},
		Third:  option.Bool{},
	}
	if got := triple.TypeName(); got != "int-int-bool-tuple" {
		t.Errorf("TypeName() = %q, want %q", got, "int-int-bool-tuple")
	}
}
