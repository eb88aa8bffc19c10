package main

import (
	"reflect"
	"testing"
)

func TestParseRootArgs_CollectsOverrides(t *testing.T) {
	root, rest, err := parseRootArgs([]string{"-c", "profile_dir=/tmp/x", "-c", "program=python3.12", "switch", "rpi"})
	if err != nil {
		t.Fatalf("parseRootArgs: %v", err)
	}
	wantOverrides := []string{"profile_dir=/tmp/x", "program=python3.12"}
	if !reflect.DeepEqual([]string(root.overrides), wantOverrides) {
		t.Fatalf("overrides = %v, want %v", root.overrides, wantOverrides)
	}
	wantRest := []string{"switch", "rpi"}
	if !reflect.DeepEqual(rest, wantRest) {
		t.Fatalf("rest = %v, want %v", rest, wantRest)
	}
}

func TestPrependOverrides(t *testing.T) {
	got := prependOverrides([]string{"a=1"}, []string{"b=2"})
	want := []string{"a=1", "b=2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("prependOverrides = %v, want %v", got, want)
	}
}
