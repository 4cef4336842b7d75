package model

import "encoding/json"

// TransactionView is the projected response form of a transaction.
// Only the fields selected in Fields are serialized.
type TransactionView struct {
	Fields Fields      `json:"-"`
	Mode   ResolveMode `json:"-"`

	SubnetworkID            string
	TransactionID           string
	Hash                    string
	Mass                    *uint64
	Payload                 *string
	BlockHashes             []string
	BlockTime               *int64
	IsAccepted              bool
	AcceptingBlockHash      *string
	AcceptingBlockBlueScore *uint64
	AcceptingBlockTime      *int64
	Inputs                  []TransactionInput
	Outputs                 []TransactionOutput
}

// NewTransactionView projects a transaction and its acceptance onto the selected fields.
func NewTransactionView(tx Transaction, acceptance Acceptance, fields Fields, mode ResolveMode) TransactionView {
	view := TransactionView{
		Fields:        fields,
		Mode:          mode,
		SubnetworkID:  tx.SubnetworkID,
		TransactionID: tx.TransactionID,
		Hash:          tx.Hash,
		BlockHashes:   tx.BlockHashes,
		IsAccepted:    acceptance.Accepted,
		Inputs:        tx.Inputs,
		Outputs:       tx.Outputs,
	}
	if tx.Mass != 0 {
		mass := tx.Mass
		view.Mass = &mass
	}
	if tx.Payload != "" {
		payload := tx.Payload
		view.Payload = &payload
	}
	if tx.BlockTime != 0 {
		blockTime := tx.BlockTime
		view.BlockTime = &blockTime
	}
	if acceptance.Accepted {
		hash := acceptance.BlockHash
		view.AcceptingBlockHash = &hash
		view.AcceptingBlockBlueScore = acceptance.BlueScore
		view.AcceptingBlockTime = acceptance.Timestamp
	}
	return view
}

// MarshalJSON emits the selected fields only.
func (v TransactionView) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(fieldNames))
	set := func(field Fields, name string, value any) {
		if v.Fields.Has(field) {
			out[name] = value
		}
	}
	set(FieldSubnetworkID, "subnetwork_id", v.SubnetworkID)
	set(FieldTransactionID, "transaction_id", v.TransactionID)
	set(FieldHash, "hash", v.Hash)
	set(FieldMass, "mass", v.Mass)
	set(FieldPayload, "payload", v.Payload)
	set(FieldBlockHash, "block_hash", v.BlockHashes)
	set(FieldBlockTime, "block_time", v.BlockTime)
	set(FieldIsAccepted, "is_accepted", v.IsAccepted)
	set(FieldAcceptingBlockHash, "accepting_block_hash", v.AcceptingBlockHash)
	set(FieldAcceptingBlockBlueScore, "accepting_block_blue_score", v.AcceptingBlockBlueScore)
	set(FieldAcceptingBlockTime, "accepting_block_time", v.AcceptingBlockTime)
	if v.Fields.Has(FieldInputs) {
		var inputs []inputJSON
		if v.Inputs != nil {
			inputs = make([]inputJSON, 0, len(v.Inputs))
			for _, in := range v.Inputs {
				inputs = append(inputs, inputJSON{input: in, mode: v.Mode})
			}
		}
		out["inputs"] = inputs
	}
	if v.Fields.Has(FieldOutputs) {
		var outputs []outputJSON
		if v.Outputs != nil {
			outputs = make([]outputJSON, 0, len(v.Outputs))
			for _, o := range v.Outputs {
				outputs = append(outputs, newOutputJSON(o))
			}
		}
		out["outputs"] = outputs
	}
	return json.Marshal(out)
}

type outputJSON struct {
	TransactionID          string  `json:"transaction_id"`
	Index                  uint32  `json:"index"`
	Amount                 uint64  `json:"amount"`
	ScriptPublicKey        string  `json:"script_public_key"`
	ScriptPublicKeyAddress *string `json:"script_public_key_address"`
	ScriptPublicKeyType    *string `json:"script_public_key_type"`
}

func newOutputJSON(o TransactionOutput) outputJSON {
	out := outputJSON{
		TransactionID:   o.TransactionID,
		Index:           o.Index,
		Amount:          o.Amount,
		ScriptPublicKey: o.ScriptPublicKey,
	}
	if o.ScriptPublicKeyAddress != "" {
		address := o.ScriptPublicKeyAddress
		out.ScriptPublicKeyAddress = &address
	}
	if o.ScriptPublicKeyType != "" {
		scriptType := o.ScriptPublicKeyType
		out.ScriptPublicKeyType = &scriptType
	}
	return out
}

// inputJSON serializes resolution fields only for the modes that produce them.
type inputJSON struct {
	input TransactionInput
	mode  ResolveMode
}

func (i inputJSON) MarshalJSON() ([]byte, error) {
	in := i.input
	out := map[string]any{
		"transaction_id":          in.TransactionID,
		"index":                   in.Index,
		"previous_outpoint_hash":  in.PreviousOutpoint.TransactionID,
		"previous_outpoint_index": in.PreviousOutpoint.Index,
		"signature_script":        in.SignatureScript,
		"sig_op_count":            in.SigOpCount,
	}
	if i.mode.Resolves() {
		out["previous_outpoint_script"] = in.PreviousOutpointScript
		out["previous_outpoint_amount"] = in.PreviousOutpointAmount
		out["previous_outpoint_address"] = in.PreviousOutpointAddress
	}
	if i.mode == ResolveFull {
		var resolved *outputJSON
		if in.PreviousOutpointResolved != nil {
			o := newOutputJSON(*in.PreviousOutpointResolved)
			resolved = &o
		}
		out["previous_outpoint_resolved"] = resolved
	}
	return json.Marshal(out)
}
