package kaspa

import (
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
	"github.com/kaspanet/kaspad/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspad/domain/consensus/utils/txscript"
	"github.com/kaspanet/kaspad/domain/dagconfig"
	"github.com/kaspanet/kaspad/util"
)

// ScriptDecoder converts between addresses and locking scripts of one network.
type ScriptDecoder struct {
	params  *dagconfig.Params
	pattern *regexp.Regexp
}

func NewScriptDecoder(network model.Network) (*ScriptDecoder, error) {
	params, err := ParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	pattern, err := regexp.Compile(fmt.Sprintf(`^%s:[a-z0-9]{61,63}$`, regexp.QuoteMeta(params.Prefix.String())))
	if err != nil {
		return nil, fmt.Errorf("compile address pattern: %w", err)
	}
	return &ScriptDecoder{params: params, pattern: pattern}, nil
}

// Script returns the hex locking script paying to address.
func (d *ScriptDecoder) Script(address string) (string, error) {
	if !d.pattern.MatchString(address) {
		return "", fmt.Errorf("%w: malformed address %q", model.ErrInvalidRequest, address)
	}
	decoded, err := util.DecodeAddress(address, d.params.Prefix)
	if err != nil {
		return "", fmt.Errorf("%w: decode address %q: %v", model.ErrInvalidRequest, address, err)
	}
	scriptPublicKey, err := txscript.PayToAddrScript(decoded)
	if err != nil {
		return "", fmt.Errorf("build script for %q: %w", address, err)
	}
	return hex.EncodeToString(scriptPublicKey.Script), nil
}

// Address returns the address a hex locking script pays to, or "" for non-standard scripts.
func (d *ScriptDecoder) Address(script string) (string, error) {
	raw, err := hex.DecodeString(script)
	if err != nil {
		return "", fmt.Errorf("decode script hex: %w", err)
	}
	_, address, err := txscript.ExtractScriptPubKeyAddress(&externalapi.ScriptPublicKey{Script: raw, Version: 0}, d.params)
	if err != nil {
		return "", fmt.Errorf("extract script address: %w", err)
	}
	if address == nil {
		return "", nil
	}
	return address.EncodeAddress(), nil
}

// ScriptType classifies a hex locking script.
func (d *ScriptDecoder) ScriptType(script string) string {
	raw, err := hex.DecodeString(script)
	if err != nil {
		return txscript.NonStandardTy.String()
	}
	return txscript.GetScriptClass(raw).String()
}
