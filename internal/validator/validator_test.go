package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type marketQuery struct {
	Kind  string `validate:"omitempty,market_kind"`
	Quote string `validate:"omitempty,quote_filter"`
}

func TestCustomTags(t *testing.T) {
	v := validator.New()
	RegisterOn(v)

	tests := []struct {
		name    string
		query   marketQuery
		wantErr bool
	}{
		{"empty", marketQuery{}, false},
		{"spot", marketQuery{Kind: "spot"}, false},
		{"futures with USDT", marketQuery{Kind: "futures", Quote: "USDT"}, false},
		{"options with all", marketQuery{Kind: "options", Quote: "all"}, false},
		{"unknown kind", marketQuery{Kind: "margin"}, true},
		{"kind is case sensitive", marketQuery{Kind: "SPOT"}, true},
		{"unknown quote", marketQuery{Quote: "BNB"}, true},
		{"lower-case quote", marketQuery{Quote: "usdt"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.query)
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
