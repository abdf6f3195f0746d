package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "integer", input: "100", want: "100"},
		{name: "fraction", input: "40.5", want: "40.5"},
		{name: "six decimals", input: "0.000001", want: "0.000001"},
		{name: "thousands separator", input: "1,000.25", want: "1000.25"},
		{name: "surrounding space", input: " 12 ", want: "12"},
		{name: "negative allowed", input: "-3.5", want: "-3.5"},
		{name: "seven decimals", input: "0.0000001", wantErr: ErrTooManyDecimals},
		{name: "empty", input: "", wantErr: ErrInvalidAmount},
		{name: "words", input: "ten", wantErr: ErrInvalidAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if tc.wantErr != nil {
				if err != tc.wantErr {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want, _ := decimal.NewFromString(tc.want)
			if !got.Equal(want) {
				t.Fatalf("expected %s, got %s", want, got)
			}
		})
	}
}

func TestParsePositiveAmountRejectsZeroAndNegative(t *testing.T) {
	for _, input := range []string{"0", "0.000000", "-1", "-0.5"} {
		if _, err := ParsePositiveAmount(input); err != ErrInvalidAmount {
			t.Fatalf("input %q: expected ErrInvalidAmount, got %v", input, err)
		}
	}
	if _, err := ParsePositiveAmount("0.5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFormatSLH(t *testing.T) {
	amount, _ := decimal.NewFromString("40.5")
	if got := FormatSLH(amount); got != "40.5000" {
		t.Fatalf("expected 40.5000, got %s", got)
	}
	reward, _ := decimal.NewFromString("0.00001")
	if got := FormatSLHA(reward); got != "0.00001000" {
		t.Fatalf("expected 0.00001000, got %s", got)
	}
}
