package api

import (
	"context"
	"encoding/json"
	"testing"
)

func TestParamUnmarshalJSON(t *testing.T) {
	var p struct {
		A Param `json:"a"`
		B Param `json:"b"`
		C Param `json:"c"`
		D Param `json:"d"`
		E Param `json:"e"`
	}
	if err := json.Unmarshal([]byte(`{"a":"x y","b":2,"c":0.25,"d":true,"e":null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.A != "x y" || p.B != "2" || p.C != "0.25" || p.D != "true" || p.E != "" {
		t.Fatalf("unexpected values %+v", p)
	}
	if err := json.Unmarshal([]byte(`{"a":{"nested":1}}`), &p); err == nil {
		t.Fatalf("expected error for object value")
	}
}

func TestParamInt(t *testing.T) {
	cases := []struct {
		in   Param
		want int
		ok   bool
	}{
		{"3", 3, true},
		{" 2 ", 2, true},
		{"2.0", 2, true},
		{"2.5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := c.in.Int()
		if got != c.want || ok != c.ok {
			t.Fatalf("%q: got (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
	if !Param("1").Is(1) || Param("01").Is(2) || Param("").Is(0) {
		t.Fatalf("unexpected Is results")
	}
}

func TestParseOpacity(t *testing.T) {
	if parseOpacity("") != nil || parseOpacity("abc") != nil || parseOpacity("NaN") != nil {
		t.Fatalf("expected nil for missing or invalid opacity")
	}
	if v := parseOpacity("2"); v == nil || *v != 1 {
		t.Fatalf("expected clamp to 1")
	}
	if v := parseOpacity("-0.5"); v == nil || *v != 0 {
		t.Fatalf("expected clamp to 0")
	}
	if v := parseOpacity("0.35"); v == nil || *v != 0.35 {
		t.Fatalf("expected 0.35")
	}
}

func TestParseStyle(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		in   Param
		want int
	}{
		{"", 2},
		{"4", 4},
		{"0", 2},
		{"7", 2},
		{"six", 2},
	}
	for _, c := range cases {
		if got := parseStyle(ctx, c.in, 2); got != c.want {
			t.Fatalf("%q: got %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSchoolParamsRequest(t *testing.T) {
	p := schoolParams{Name: " Sam ", Hand: "2", Style: "9", RawByte: "2"}
	req := p.request(context.Background())
	if req.Name != "Sam" || req.Hand != 2 || req.Style != 1 || req.Opacity != nil {
		t.Fatalf("unexpected request %+v", req)
	}
}
