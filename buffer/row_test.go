package buffer

import "testing"

func TestRow_Update_TabExpansion(t *testing.T) {
	cases := []struct {
		name  string
		chars string
		want  string
	}{
		{name: "tab at column 0", chars: "\tx", want: "        x"},
		{name: "tab at column 3", chars: "abc\tx", want: "abc     x"},
		{name: "tab at column 8", chars: "12345678\tx", want: "12345678        x"},
		{name: "no tabs", chars: "plain", want: "plain"},
		{name: "only tab", chars: "\t", want: "        "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRow([]byte(tc.chars), 8)
			if got := r.Render(); got != tc.want {
				t.Fatalf("render=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestRow_CxToRx_TabStops(t *testing.T) {
	r := newRow([]byte("abc\tx"), 8)

	cases := []struct {
		cx, want int
	}{
		{cx: 0, want: 0},
		{cx: 3, want: 3},
		{cx: 4, want: 8}, // past the tab
		{cx: 5, want: 9},
	}
	for _, tc := range cases {
		if got := r.CxToRx(tc.cx, 8); got != tc.want {
			t.Fatalf("CxToRx(%d)=%d, want %d", tc.cx, got, tc.want)
		}
	}
}

func TestRow_RxToCx_InsideTab(t *testing.T) {
	r := newRow([]byte("\tx"), 8)

	// Any render column inside the tab resolves to the tab itself.
	for rx := 0; rx < 8; rx++ {
		if got := r.RxToCx(rx, 8); got != 0 {
			t.Fatalf("RxToCx(%d)=%d, want 0", rx, got)
		}
	}
	if got := r.RxToCx(8, 8); got != 1 {
		t.Fatalf("RxToCx(8)=%d, want 1", got)
	}
}

func TestRow_RxToCx_PastEndReturnsLen(t *testing.T) {
	r := newRow([]byte("ab\tc"), 8)
	if got, want := r.RxToCx(1000, 8), r.Len(); got != want {
		t.Fatalf("RxToCx(1000)=%d, want %d", got, want)
	}
}

func TestRow_Roundtrip_NoTabs(t *testing.T) {
	r := newRow([]byte("hello world"), 8)
	for cx := 0; cx <= r.Len(); cx++ {
		if got := r.RxToCx(r.CxToRx(cx, 8), 8); got != cx {
			t.Fatalf("roundtrip at cx=%d: got %d", cx, got)
		}
	}
}

func TestRow_Roundtrip_WithTabs(t *testing.T) {
	r := newRow([]byte("\ta\tbc\t"), 8)
	for cx := 0; cx <= r.Len(); cx++ {
		if got := r.RxToCx(r.CxToRx(cx, 8), 8); got != cx {
			t.Fatalf("roundtrip at cx=%d: got %d", cx, got)
		}
	}
}
