package app

import (
	"math/big"

	"github.com/fd1az/asset-console/business/assets/domain"
)

// ChangeFunc receives the validated record, or nil when the form is invalid.
type ChangeFunc func(info *domain.Info)

// Params configures a Form. DefaultValue and OpenID are read once by NewForm.
type Params struct {
	AssetIDs     []*big.Int
	DefaultValue *domain.FormState
	OnChange     ChangeFunc
	OpenID       *big.Int
}

// Form collects asset creation input. Every mutation re-evaluates the whole
// state and calls OnChange exactly once, before the mutator returns.
// A Form is not safe for concurrent use.
type Form struct {
	existing domain.IDSet
	onChange ChangeFunc
	defaults domain.FormState

	state domain.FormState
	eval  domain.Evaluation
}

// NewForm seeds the form from p.DefaultValue and p.OpenID, evaluates it and
// reports the initial result.
func NewForm(p Params) *Form {
	var seed domain.FormState
	if p.DefaultValue != nil {
		seed = p.DefaultValue.Clone()
	}
	if seed.AssetID == nil {
		seed.AssetID = copyInt(p.OpenID)
	}

	f := &Form{
		existing: domain.NewIDSet(p.AssetIDs...),
		onChange: p.OnChange,
		defaults: seed.Clone(),
		state:    seed,
	}
	f.recompute()
	return f
}

// SetAccountID is the creator account widget callback.
func (f *Form) SetAccountID(accountID string) {
	f.state.AccountID = accountID
	f.recompute()
}

// SetAssetID is the asset id widget callback. nil clears the field.
func (f *Form) SetAssetID(id *big.Int) {
	f.state.AssetID = copyInt(id)
	f.recompute()
}

// SetAssetDecimals is the decimals widget callback. nil clears the field.
func (f *Form) SetAssetDecimals(decimals *big.Int) {
	f.state.AssetDecimals = copyInt(decimals)
	f.recompute()
}

// SetAssetName is the name widget callback.
func (f *Form) SetAssetName(name string) {
	f.state.AssetName = name
	f.recompute()
}

// SetAssetSymbol is the symbol widget callback.
func (f *Form) SetAssetSymbol(symbol string) {
	f.state.AssetSymbol = symbol
	f.recompute()
}

// SetMinBalance is the minimum balance widget callback, in raw units.
func (f *Form) SetMinBalance(minBalance *big.Int) {
	f.state.MinBalance = copyInt(minBalance)
	f.recompute()
}

// SetAssetIDs replaces the set of existing ids and re-validates.
// The ids are copied; mutating the slice afterwards has no effect.
func (f *Form) SetAssetIDs(ids []*big.Int) {
	f.existing = domain.NewIDSet(ids...)
	f.recompute()
}

// State returns a copy of the current input.
func (f *Form) State() domain.FormState {
	return f.state.Clone()
}

// Defaults returns the seed values captured at construction.
func (f *Form) Defaults() domain.FormState {
	return f.defaults.Clone()
}

// Evaluation returns the latest derived values.
func (f *Form) Evaluation() domain.Evaluation {
	return f.eval
}

// Output returns the latest validated record, or nil.
func (f *Form) Output() *domain.Info {
	return f.eval.Info
}

func (f *Form) recompute() {
	f.eval = domain.Evaluate(f.state, f.existing)
	if f.onChange != nil {
		f.onChange(f.eval.Info)
	}
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
