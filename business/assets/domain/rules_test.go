package domain

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"
)

func validState() FormState {
	return FormState{
		AccountID:     "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY",
		AssetID:       big.NewInt(42),
		AssetDecimals: big.NewInt(6),
		AssetName:     "TestCoin",
		AssetSymbol:   "TST",
		MinBalance:    big.NewInt(1000),
	}
}

func TestEvaluate_MissingFieldGivesNil(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FormState)
	}{
		{"no_account", func(s *FormState) { s.AccountID = "" }},
		{"no_asset_id", func(s *FormState) { s.AssetID = nil }},
		{"no_decimals", func(s *FormState) { s.AssetDecimals = nil }},
		{"no_name", func(s *FormState) { s.AssetName = "" }},
		{"no_symbol", func(s *FormState) { s.AssetSymbol = "" }},
		{"no_min_balance", func(s *FormState) { s.MinBalance = nil }},
	}

	existing := NewIDSet(big.NewInt(1), big.NewInt(2))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validState()
			tt.mutate(&s)
			if got := Evaluate(s, existing).Info; got != nil {
				t.Errorf("expected nil output, got %+v", got)
			}
		})
	}
}

func TestIsValidDecimals(t *testing.T) {
	tests := []struct {
		name     string
		decimals *big.Int
		want     bool
	}{
		{"absent", nil, false},
		{"zero", big.NewInt(0), true},
		{"ten", big.NewInt(10), true},
		{"max", big.NewInt(20), true},
		{"over_max", big.NewInt(21), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDecimals(tt.decimals); got != tt.want {
				t.Errorf("IsValidDecimals(%v) = %v, want %v", tt.decimals, got, tt.want)
			}
		})
	}
}

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"length_2", "ab", false},
		{"length_3", "abc", true},
		{"length_32", strings.Repeat("n", 32), true},
		{"length_33", strings.Repeat("n", 33), false},
		{"multibyte_counts_characters", "ñañ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidName(tt.input); got != tt.want {
				t.Errorf("IsValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidSymbol(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"length_1", "T", false},
		{"length_2", "TS", false},
		{"length_3", "TST", true},
		{"length_7", "SEVENSS", true},
		{"length_8", "EIGHTSSS", false},
		// One astral character is two UTF-16 code units.
		{"astral_pair_counts_double", "\U0001F600\U0001F600", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidSymbol(tt.input); got != tt.want {
				t.Errorf("IsValidSymbol(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name     string
		id       *big.Int
		existing IDSet
		want     bool
	}{
		{"absent", nil, NewIDSet(), false},
		{"zero", big.NewInt(0), NewIDSet(), false},
		{"negative", big.NewInt(-5), NewIDSet(), false},
		{"taken", big.NewInt(5), NewIDSet(big.NewInt(5)), false},
		{"free", big.NewInt(5), NewIDSet(big.NewInt(3)), true},
		{"empty_set", big.NewInt(1), IDSet{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidID(tt.id, tt.existing); got != tt.want {
				t.Errorf("IsValidID(%v) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestEvaluate_MinBalance(t *testing.T) {
	existing := NewIDSet(big.NewInt(1), big.NewInt(2))

	s := validState()
	s.MinBalance = big.NewInt(0)
	if got := Evaluate(s, existing).Info; got != nil {
		t.Errorf("expected nil output for zero min balance, got %+v", got)
	}

	s.MinBalance = big.NewInt(1)
	got := Evaluate(s, existing).Info
	if got == nil {
		t.Fatal("expected full record for min balance 1")
	}
	if got.MinBalance().Int64() != 1 {
		t.Errorf("expected min balance 1, got %s", got.MinBalance())
	}
}

func TestDisplayFor(t *testing.T) {
	tests := []struct {
		name     string
		decimals *big.Int
		symbol   string
		want     Display
	}{
		{"both_present", big.NewInt(10), "usdc", Display{Decimals: 10, Symbol: "USDC"}},
		{"zero_decimals_present", big.NewInt(0), "abc", Display{Decimals: 0, Symbol: "ABC"}},
		{"decimals_absent", nil, "usdc", Display{Decimals: 0, Symbol: NoSymbol}},
		{"symbol_absent", big.NewInt(10), "", Display{Decimals: 0, Symbol: NoSymbol}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayFor(tt.decimals, tt.symbol); got != tt.want {
				t.Errorf("DisplayFor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_Scenario(t *testing.T) {
	existing := NewIDSet(big.NewInt(1), big.NewInt(2))
	s := validState()

	e := Evaluate(s, existing)
	if e.Info == nil {
		t.Fatal("expected full record")
	}
	if !e.Info.Equal(e.Info) || e.Info.AccountID() != s.AccountID ||
		e.Info.AssetID().Int64() != 42 || e.Info.AssetDecimals().Int64() != 6 ||
		e.Info.AssetName() != "TestCoin" || e.Info.AssetSymbol() != "TST" ||
		e.Info.MinBalance().Int64() != 1000 {
		t.Errorf("unexpected record %+v", e.Info.State())
	}

	s.AssetSymbol = "T"
	e = Evaluate(s, existing)
	if e.Info != nil {
		t.Error("expected nil output after shortening the symbol")
	}
	if e.ValidSymbol {
		t.Error("expected symbol to be invalid")
	}
	if !e.ValidID || !e.ValidName || !e.ValidDecimals {
		t.Errorf("expected other flags to remain valid, got %+v", e)
	}
}

func TestEvaluate_OutputDoesNotAliasState(t *testing.T) {
	s := validState()
	e := Evaluate(s, NewIDSet())
	s.AssetID.SetInt64(99)
	s.MinBalance.SetInt64(0)

	if e.Info.AssetID().Int64() != 42 || e.Info.MinBalance().Int64() != 1000 {
		t.Error("expected the record to be independent of later state changes")
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	s := validState()
	existing := NewIDSet(big.NewInt(7))

	a := Evaluate(s, existing)
	b := Evaluate(s, existing)
	if a.Display != b.Display || a.ValidID != b.ValidID || !a.Info.Equal(b.Info) {
		t.Error("expected repeated evaluation to give equal results")
	}
}

func TestInfo_MarshalJSON(t *testing.T) {
	e := Evaluate(validState(), NewIDSet())

	raw, err := json.Marshal(e.Info)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"accountId":"5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY","assetDecimals":6,"assetId":42,"assetName":"TestCoin","assetSymbol":"TST","minBalance":1000}`
	if string(raw) != want {
		t.Errorf("unexpected JSON:\n got %s\nwant %s", raw, want)
	}
}
