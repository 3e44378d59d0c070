package flex_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/screenscraper/client/flex"
)

func TestBool(t *testing.T) {
	tests := map[string]struct {
		in   string
		want bool
	}{
		"true":         {`true`, true},
		"false":        {`false`, false},
		"string one":   {`"1"`, true},
		"string zero":  {`"0"`, false},
		"string true":  {`"true"`, true},
		"string false": {`"false"`, false},
		"empty string": {`""`, false},
		"null":         {`null`, false},
		"number one":   {`1`, true},
		"number zero":  {`0`, false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var b flex.Bool
			if err := json.Unmarshal([]byte(tc.in), &b); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tc.in, err)
			}
			if bool(b) != tc.want {
				t.Fatalf("Unmarshal(%s) = %v, want %v", tc.in, b, tc.want)
			}
		})
	}
}

func TestBool_Malformed(t *testing.T) {
	for _, in := range []string{`"yes"`, `2`, `"2"`, `[]`} {
		var b flex.Bool
		err := json.Unmarshal([]byte(in), &b)

		var mbe *flex.MalformedBooleanError
		if !errors.As(err, &mbe) {
			t.Fatalf("Unmarshal(%s) error = %v, want *MalformedBooleanError", in, err)
		}
		if mbe.Raw != in {
			t.Fatalf("Raw = %q, want %q", mbe.Raw, in)
		}
		if !errors.Is(err, flex.ErrMalformed) {
			t.Fatal("error should match ErrMalformed")
		}
	}
}

func TestNullInt(t *testing.T) {
	tests := map[string]struct {
		in    string
		want  int64
		valid bool
	}{
		"null":           {`null`, 0, false},
		"empty string":   {`""`, 0, false},
		"numeric string": {`"42"`, 42, true},
		"number":         {`42`, 42, true},
		"negative":       {`"-7"`, -7, true},
		"zero":           {`0`, 0, true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var n flex.NullInt
			if err := json.Unmarshal([]byte(tc.in), &n); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tc.in, err)
			}
			got, ok := n.Get()
			if got != tc.want || ok != tc.valid {
				t.Fatalf("Get() = (%d, %v), want (%d, %v)", got, ok, tc.want, tc.valid)
			}
		})
	}
}

func TestNullInt_Malformed(t *testing.T) {
	for _, in := range []string{`"abc"`, `1.5`, `true`, `"12a"`} {
		var n flex.NullInt
		err := json.Unmarshal([]byte(in), &n)

		var mie *flex.MalformedIntegerError
		if !errors.As(err, &mie) {
			t.Fatalf("Unmarshal(%s) error = %v, want *MalformedIntegerError", in, err)
		}
		if mie.Raw != in {
			t.Fatalf("Raw = %q, want %q", mie.Raw, in)
		}
	}
}

func TestNullInt_Marshal(t *testing.T) {
	got, err := json.Marshal(struct {
		A flex.NullInt `json:"a"`
		B flex.NullInt `json:"b"`
	}{A: flex.NewNullInt(3)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if diff := cmp.Diff(`{"a":3,"b":null}`, string(got)); diff != "" {
		t.Fatalf("Marshal mismatch (-want +got):\n%s", diff)
	}
}

func TestInt(t *testing.T) {
	var v struct {
		A flex.Int `json:"a"`
		B flex.Int `json:"b"`
		C flex.Int `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":"12","b":"","c":7}`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if v.A != 12 || v.B != 0 || v.C != 7 {
		t.Fatalf("got %+v", v)
	}
}

func TestTime(t *testing.T) {
	var ts flex.Time
	if err := json.Unmarshal([]byte(`"2024-01-15 10:30:00"`), &ts); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("Time = %v, want %v", ts.Time, want)
	}

	out, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `"2024-01-15T09:30:00Z"` {
		t.Fatalf("Marshal = %s", out)
	}

	var again flex.Time
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("Unmarshal(marshalled): %v", err)
	}
	if !again.Equal(ts.Time) {
		t.Fatalf("round trip = %v, want %v", again.Time, ts.Time)
	}
}

func TestTime_SummerHasNoDST(t *testing.T) {
	var ts flex.Time
	if err := json.Unmarshal([]byte(`"2024-07-01 12:00:00"`), &ts); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got := ts.UTC().Hour(); got != 11 {
		t.Fatalf("UTC hour = %d, want 11", got)
	}
}

func TestTime_Absent(t *testing.T) {
	for _, in := range []string{`null`, `""`, `"  "`} {
		var ts flex.Time
		if err := json.Unmarshal([]byte(in), &ts); err != nil {
			t.Fatalf("Unmarshal(%s): %v", in, err)
		}
		if ts.Valid() {
			t.Fatalf("Unmarshal(%s) should be absent", in)
		}

		out, err := json.Marshal(ts)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if string(out) != "null" {
			t.Fatalf("Marshal(absent) = %s, want null", out)
		}
	}
}

func TestTime_Malformed(t *testing.T) {
	for _, in := range []string{`"15/01/2024"`, `12`, `"2024-13-01 00:00:00"`} {
		var ts flex.Time
		err := json.Unmarshal([]byte(in), &ts)

		var mte *flex.MalformedTimeError
		if !errors.As(err, &mte) {
			t.Fatalf("Unmarshal(%s) error = %v, want *MalformedTimeError", in, err)
		}
		if mte.Raw != in {
			t.Fatalf("Raw = %q, want %q", mte.Raw, in)
		}
	}
}

type item struct {
	ID   flex.Int `json:"id"`
	Name string   `json:"name"`
}

func TestList(t *testing.T) {
	tests := map[string]struct {
		in   string
		want flex.List[item]
	}{
		"sentinel":        {`[{}]`, flex.List[item]{}},
		"sentinel spaced": {`[ { } ]`, flex.List[item]{}},
		"bare object":     {`{}`, flex.List[item]{}},
		"null":            {`null`, flex.List[item]{}},
		"empty":           {`[]`, flex.List[item]{}},
		"one":             {`[{"id":"1","name":"a"}]`, flex.List[item]{{ID: 1, Name: "a"}}},
		"two":             {`[{"id":1,"name":"a"},{"id":2,"name":"b"}]`, flex.List[item]{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var l flex.List[item]
			if err := json.Unmarshal([]byte(tc.in), &l); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tc.in, err)
			}
			if l == nil {
				t.Fatal("decoded list should not be nil")
			}
			if diff := cmp.Diff(tc.want, l); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestList_SentinelIdempotent(t *testing.T) {
	var first flex.List[item]
	if err := json.Unmarshal([]byte(`[{}]`), &first); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	out, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != "[]" {
		t.Fatalf("Marshal = %s, want []", out)
	}

	var second flex.List[item]
	if err := json.Unmarshal(out, &second); err != nil {
		t.Fatalf("Unmarshal(%s): %v", out, err)
	}
	if len(second) != 0 || second == nil {
		t.Fatalf("second decode = %#v, want empty non-nil", second)
	}
}

func TestList_ElementError(t *testing.T) {
	var l flex.List[item]
	err := json.Unmarshal([]byte(`[{"id":1},{"id":"x"}]`), &l)

	var ee *flex.ElementError
	if !errors.As(err, &ee) {
		t.Fatalf("error = %v, want *ElementError", err)
	}
	if ee.Index != 1 {
		t.Fatalf("Index = %d, want 1", ee.Index)
	}
	if ee.Raw != `{"id":"x"}` {
		t.Fatalf("Raw = %q", ee.Raw)
	}
	if ee.Type != "flex_test.item" {
		t.Fatalf("Type = %q, want flex_test.item", ee.Type)
	}

	var mie *flex.MalformedIntegerError
	if !errors.As(err, &mie) {
		t.Fatal("ElementError should wrap the element failure")
	}
}

func TestDict(t *testing.T) {
	var d flex.Dict[item]
	if err := json.Unmarshal([]byte(`{"10":{"id":10,"name":"j"},"2":{"id":2,"name":"b"},"1":{"id":"1","name":"a"}}`), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 10, Name: "j"}}
	if diff := cmp.Diff(want, d.Values()); diff != "" {
		t.Fatalf("Values mismatch (-want +got):\n%s", diff)
	}
}

func TestDict_Empty(t *testing.T) {
	for _, in := range []string{`[]`, `[{}]`, `{}`, `null`} {
		var d flex.Dict[item]
		if err := json.Unmarshal([]byte(in), &d); err != nil {
			t.Fatalf("Unmarshal(%s): %v", in, err)
		}
		if d == nil || len(d) != 0 {
			t.Fatalf("Unmarshal(%s) = %#v, want empty non-nil", in, d)
		}
	}
}

func TestDict_ElementError(t *testing.T) {
	var d flex.Dict[item]
	err := json.Unmarshal([]byte(`{"3":{"id":"three"}}`), &d)

	var ee *flex.ElementError
	if !errors.As(err, &ee) {
		t.Fatalf("error = %v, want *ElementError", err)
	}
	if ee.Key != "3" {
		t.Fatalf("Key = %q, want 3", ee.Key)
	}
}
