package cli

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "pending", want: "PENDING"},
		{in: "Pending", want: "PENDING"},
		{in: "in-process", want: "IN_PROCESS"},
		{in: "in_process", want: "IN_PROCESS"},
		{in: "inprocess", want: "IN_PROCESS"},
		{in: "closed", want: "CLOSED"},
		{in: "  closed  ", want: "CLOSED"},
		{in: "resolved", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseStatus(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseStatus(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseStatus(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
