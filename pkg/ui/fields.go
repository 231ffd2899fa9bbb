package ui

import (
	"math/big"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/fd1az/asset-console/business/assets/app"
	"github.com/fd1az/asset-console/internal/asset"
)

// decimalsBitLength bounds the decimals input to the on-chain u8.
const decimalsBitLength = 8

type fieldID int

// Fields in display order.
const (
	fieldAccount fieldID = iota
	fieldName
	fieldSymbol
	fieldDecimals
	fieldMinBalance
	fieldAssetID
	fieldCount
)

type fieldSpec struct {
	label       string
	hint        string
	placeholder string
	charLimit   int
}

var fieldSpecs = [fieldCount]fieldSpec{
	fieldAccount: {
		label:       "creator account",
		hint:        "The account that is to be used to create this asset and setup the initial metadata.",
		placeholder: "account address",
		charLimit:   64,
	},
	fieldName: {
		label:     "asset name",
		hint:      "The descriptive name for this asset.",
		charLimit: 64,
	},
	fieldSymbol: {
		label:     "asset symbol",
		hint:      "The symbol that will represent this asset.",
		charLimit: 16,
	},
	fieldDecimals: {
		label:       "asset decimals",
		hint:        "The number of decimals for this token. Max allowed via the UI is set to 20.",
		placeholder: "0",
		charLimit:   4,
	},
	fieldMinBalance: {
		label:       "minimum balance",
		hint:        "The minimum balance for the asset. This is specified in the units and decimals as requested.",
		placeholder: "0",
		charLimit:   80,
	},
	fieldAssetID: {
		label:       "asset id",
		hint:        "The selected id for the asset. This should not match an already-existing asset id.",
		placeholder: "1",
		charLimit:   40,
	},
}

// newInputs builds one text input per field, prefilled from the form seeds.
func newInputs(form *app.Form, accounts []string, complete key.Binding) []textinput.Model {
	seed := form.Defaults()
	display := form.Evaluation().Display

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		spec := fieldSpecs[i]
		ti := textinput.New()
		ti.Prompt = "› "
		ti.Placeholder = spec.placeholder
		ti.CharLimit = spec.charLimit
		ti.Width = 48
		inputs[i] = ti
	}

	inputs[fieldAccount].SetValue(seed.AccountID)
	inputs[fieldAccount].ShowSuggestions = len(accounts) > 0
	inputs[fieldAccount].SetSuggestions(accounts)
	inputs[fieldAccount].KeyMap.AcceptSuggestion = complete

	inputs[fieldName].SetValue(seed.AssetName)
	inputs[fieldSymbol].SetValue(seed.AssetSymbol)
	inputs[fieldDecimals].SetValue(intText(seed.AssetDecimals))
	if seed.MinBalance != nil {
		inputs[fieldMinBalance].SetValue(asset.FormatUnits(seed.MinBalance, display.Decimals, ""))
	}
	inputs[fieldAssetID].SetValue(intText(seed.AssetID))

	return inputs
}

// apply pushes the text of field id into the form. Text that does not parse
// clears the field and is returned as a widget error.
func apply(form *app.Form, id fieldID, text string) error {
	switch id {
	case fieldAccount:
		form.SetAccountID(strings.TrimSpace(text))
	case fieldName:
		form.SetAssetName(text)
	case fieldSymbol:
		form.SetAssetSymbol(text)
	case fieldDecimals:
		v, err := parseNumber(text, decimalsBitLength)
		form.SetAssetDecimals(v)
		return err
	case fieldMinBalance:
		v, err := parseBalance(text, form.Evaluation().Display.Decimals)
		form.SetMinBalance(v)
		return err
	case fieldAssetID:
		v, err := parseNumber(text, asset.IDBitLength)
		form.SetAssetID(v)
		return err
	}
	return nil
}

// parseNumber returns nil without error for empty text.
func parseNumber(text string, bitLength int) (*big.Int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return asset.ParseID(text, bitLength)
}

func parseBalance(text string, decimals int) (*big.Int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return asset.ParseUnits(text, decimals)
}

func intText(v *big.Int) string {
	if v == nil {
		return ""
	}
	return v.String()
}
