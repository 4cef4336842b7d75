package model

import (
	"fmt"
	"strings"
)

// Fields is a projection of transaction view fields.
type Fields uint16

const (
	FieldSubnetworkID Fields = 1 << iota
	FieldTransactionID
	FieldHash
	FieldMass
	FieldPayload
	FieldBlockHash
	FieldBlockTime
	FieldIsAccepted
	FieldAcceptingBlockHash
	FieldAcceptingBlockBlueScore
	FieldAcceptingBlockTime
	FieldInputs
	FieldOutputs

	AllFields = FieldSubnetworkID | FieldTransactionID | FieldHash | FieldMass | FieldPayload |
		FieldBlockHash | FieldBlockTime | FieldIsAccepted | FieldAcceptingBlockHash |
		FieldAcceptingBlockBlueScore | FieldAcceptingBlockTime | FieldInputs | FieldOutputs

	// AcceptanceFields are the fields answered by the acceptance resolver.
	AcceptanceFields = FieldIsAccepted | FieldAcceptingBlockHash | FieldAcceptingBlockBlueScore | FieldAcceptingBlockTime
)

var fieldNames = []struct {
	field Fields
	name  string
}{
	{FieldSubnetworkID, "subnetwork_id"},
	{FieldTransactionID, "transaction_id"},
	{FieldHash, "hash"},
	{FieldMass, "mass"},
	{FieldPayload, "payload"},
	{FieldBlockHash, "block_hash"},
	{FieldBlockTime, "block_time"},
	{FieldIsAccepted, "is_accepted"},
	{FieldAcceptingBlockHash, "accepting_block_hash"},
	{FieldAcceptingBlockBlueScore, "accepting_block_blue_score"},
	{FieldAcceptingBlockTime, "accepting_block_time"},
	{FieldInputs, "inputs"},
	{FieldOutputs, "outputs"},
}

// ParseFields parses a comma separated list of field names. An empty list selects every field.
func ParseFields(value string) (Fields, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return AllFields, nil
	}
	var fields Fields
	for _, part := range strings.Split(value, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		field, ok := fieldByName(name)
		if !ok {
			return 0, fmt.Errorf("%w: unknown field %q", ErrInvalidRequest, name)
		}
		fields |= field
	}
	if fields == 0 {
		return AllFields, nil
	}
	return fields, nil
}

func fieldByName(name string) (Fields, bool) {
	for _, f := range fieldNames {
		if f.name == name {
			return f.field, true
		}
	}
	return 0, false
}

// Has reports whether every field of other is selected.
func (f Fields) Has(other Fields) bool {
	return f&other == other
}

// Any reports whether at least one field of other is selected.
func (f Fields) Any(other Fields) bool {
	return f&other != 0
}

func (f Fields) Without(other Fields) Fields {
	return f &^ other
}

func (f Fields) String() string {
	names := make([]string, 0, len(fieldNames))
	for _, n := range fieldNames {
		if f.Has(n.field) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}
