package main

import (
	"reflect"
	"testing"
)

func TestParsePages(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []int
		wantErr bool
	}{
		{name: "empty selects all", spec: "", want: nil},
		{name: "single page", spec: "3", want: []int{3}},
		{name: "list", spec: "1,4,2", want: []int{1, 4, 2}},
		{name: "range", spec: "3-5", want: []int{3, 4, 5}},
		{name: "mixed with spaces", spec: "1, 3-5", want: []int{1, 3, 4, 5}},
		{name: "trailing comma", spec: "2,", want: []int{2}},
		{name: "reversed range", spec: "5-3", wantErr: true},
		{name: "not a number", spec: "abc", wantErr: true},
		{name: "half open range", spec: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePages(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parsePages(%q) expected error, got %v", tt.spec, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePages(%q) failed: %v", tt.spec, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parsePages(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}
