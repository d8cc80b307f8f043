// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

package option_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/anddam/kakoune/lib/option"
)

func timestampedInts() option.PrefixedListCodec[uint, int] {
	return option.TimestampedListCodec[int]("int-specs", option.Int{})
}

func TestPrefixedListFormat(t *testing.T) {
	codec := timestampedInts()
	tests := []struct {
		name  string
		value option.TimestampedList[int]
		want  string
	}{
		{name: "prefix-and-list", value: option.TimestampedList[int]{Prefix: 5, List: []int{1, 2}}, want: "5:1:2"},
		{name: "empty-list", value: option.TimestampedList[int]{Prefix: 5}, want: "5:"},
		{name: "zero", value: option.TimestampedList[int]{}, want: "0:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := codec.Format(tt.value); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestPrefixedListParse(t *testing.T) {
	codec := timestampedInts()
	tests := []struct {
		name    string
		text    string
		want    option.TimestampedList[int]
		wantErr bool
	}{
		{name: "prefix-and-list", text: "5:1:2", want: option.TimestampedList[int]{Prefix: 5, List: []int{1, 2}}},
		{name: "bare-prefix-empty-list", text: "5", want: option.TimestampedList[int]{Prefix: 5}},
		{name: "prefix-and-empty-tail", text: "5:", want: option.TimestampedList[int]{Prefix: 5}},
		{name: "bad-prefix", text: "x:1", wantErr: true},
		{name: "bad-element", text: "5:1:x", wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Parse(tt.text)
			if tt.wantErr {
				if !errors.Is(err, option.ErrInvalidFormat) {
					t.Fatalf("Parse(%q) = %v, want ErrInvalidFormat", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.text, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestPrefixedListRoundTrip(t *testing.T) {
	codec := timestampedInts()
	values := []option.TimestampedList[int]{
		{},
		{Prefix: 1},
		{Prefix: 7, List: []int{-1, 0, 1}},
	}
	for _, value := range values {
		text := codec.Format(value)
		got, err := codec.Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if !got.Equal(value) {
			t.Errorf("round trip %v -> %q -> %v", value, text, got)
		}
	}
}

func TestPrefixedListAddOnlyTouchesList(t *testing.T) {
	codec := timestampedInts()
	value := option.TimestampedList[int]{Prefix: 9, List: []int{1}}
	changed, err := codec.Add(&value, "2:3")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !changed {
		t.Error("Add of non-empty delta reported no change")
	}
	if value.Prefix != 9 {
		t.Errorf("Add modified the prefix: %d", value.Prefix)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(value.List, want) {
		t.Errorf("Add appended wrong elements: %v, want %v", value.List, want)
	}

	changed, err = codec.Add(&value, "")
	if err != nil {
		t.Fatalf("Add of empty delta: %v", err)
	}
	if changed {
		t.Error("Add of empty delta reported a change")
	}
}

func TestPrefixedListEqual(t *testing.T) {
	a := option.TimestampedList[int]{Prefix: 1, List: []int{1, 2}}
	b := option.TimestampedList[int]{Prefix: 1, List: []int{1, 2}}
	if !a.Equal(b) {
		t.Error("identical values compare unequal")
	}
	if a.Equal(option.TimestampedList[int]{Prefix: 2, List: []int{1, 2}}) {
		t.Error("differing prefixes compare equal")
	}
	if a.Equal(option.TimestampedList[int]{Prefix: 1, List: []int{1}}) {
		t.Error("differing lists compare equal")
	}
}

func TestPrefixedListTypeName(t *testing.T) {
	if got := timestampedInts().TypeName(); got != "int-specs" {
		t.Errorf("TypeName() = %q, want published name %q", got, "int-specs")
	}
	derived := option.PrefixedListCodec[uint, int]{Prefix: option.Size{}, Elem: option.Int{}}
	if got := derived.TypeName(); got != "uint-prefixed-int-list" {
		t.Errorf("TypeName() = %q, want %q", got, "uint-prefixed-int-list")
	}
}
