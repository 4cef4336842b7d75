package model

// Outpoint references an output of a previous transaction.
type Outpoint struct {
	TransactionID string
	Index         uint32
}

// Transaction is the stored (or node-provided) form of a transaction.
type Transaction struct {
	TransactionID string
	SubnetworkID  string
	Hash          string
	Mass          uint64
	Payload       string
	// BlockTime is epoch milliseconds.
	BlockTime   int64
	BlockHashes []string
	Inputs      []TransactionInput
	Outputs     []TransactionOutput
}

// TransactionInput carries the raw input and, once resolved, the data of the output it spends.
type TransactionInput struct {
	TransactionID    string
	Index            uint32
	PreviousOutpoint Outpoint
	SignatureScript  string
	SigOpCount       uint8

	PreviousOutpointScript   *string
	PreviousOutpointAmount   *uint64
	PreviousOutpointAddress  *string
	PreviousOutpointResolved *TransactionOutput
}

// ClearResolution drops any previously resolved outpoint data.
func (in *TransactionInput) ClearResolution() {
	in.PreviousOutpointScript = nil
	in.PreviousOutpointAmount = nil
	in.PreviousOutpointAddress = nil
	in.PreviousOutpointResolved = nil
}

type TransactionOutput struct {
	TransactionID          string
	Index                  uint32
	Amount                 uint64
	ScriptPublicKey        string
	ScriptPublicKeyAddress string
	ScriptPublicKeyType    string
}

// Outpoint returns the reference other inputs use to spend this output.
func (o TransactionOutput) Outpoint() Outpoint {
	return Outpoint{TransactionID: o.TransactionID, Index: o.Index}
}
