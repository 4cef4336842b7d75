package kaspa

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
	"github.com/goodnatureofminers/kaspa-explorer-backend/pkg/safe"
	"github.com/kaspanet/kaspad/app/appmessage"
)

func convertBlock(requestedHash string, block *appmessage.RPCBlock) (*model.NodeBlock, error) {
	if block == nil || block.Header == nil {
		return nil, errors.New("node returned block without header")
	}

	hash := requestedHash
	if block.VerboseData != nil && block.VerboseData.Hash != "" {
		hash = block.VerboseData.Hash
	}

	result := &model.NodeBlock{
		Header: model.BlockHeader{
			Hash:      hash,
			BlueScore: block.Header.BlueScore,
			DAAScore:  block.Header.DAAScore,
			Timestamp: block.Header.Timestamp,
		},
		Transactions: make([]model.Transaction, 0, len(block.Transactions)),
	}

	for _, rpcTx := range block.Transactions {
		tx, err := convertTransaction(hash, rpcTx)
		if err != nil {
			return nil, err
		}
		result.Transactions = append(result.Transactions, tx)
	}
	return result, nil
}

func convertTransaction(blockHash string, rpcTx *appmessage.RPCTransaction) (model.Transaction, error) {
	if rpcTx.VerboseData == nil {
		return model.Transaction{}, errors.New("node returned transaction without verbose data")
	}

	blockTime, err := safe.Int64(rpcTx.VerboseData.BlockTime)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %s block time: %w", rpcTx.VerboseData.TransactionID, err)
	}

	id := rpcTx.VerboseData.TransactionID
	tx := model.Transaction{
		TransactionID: id,
		SubnetworkID:  rpcTx.SubnetworkID,
		Hash:          rpcTx.VerboseData.Hash,
		Mass:          rpcTx.VerboseData.Mass,
		Payload:       rpcTx.Payload,
		BlockTime:     blockTime,
		BlockHashes:   []string{blockHash},
	}

	if len(rpcTx.Inputs) > 0 {
		tx.Inputs = make([]model.TransactionInput, 0, len(rpcTx.Inputs))
	}
	for i, input := range rpcTx.Inputs {
		index, err := safe.Uint32(i)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("transaction %s input index: %w", id, err)
		}
		converted := model.TransactionInput{
			TransactionID:   id,
			Index:           index,
			SignatureScript: input.SignatureScript,
			SigOpCount:      input.SigOpCount,
		}
		if input.PreviousOutpoint != nil {
			converted.PreviousOutpoint = model.Outpoint{
				TransactionID: input.PreviousOutpoint.TransactionID,
				Index:         input.PreviousOutpoint.Index,
			}
		}
		tx.Inputs = append(tx.Inputs, converted)
	}

	if len(rpcTx.Outputs) > 0 {
		tx.Outputs = make([]model.TransactionOutput, 0, len(rpcTx.Outputs))
	}
	for i, output := range rpcTx.Outputs {
		index, err := safe.Uint32(i)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("transaction %s output index: %w", id, err)
		}
		converted := model.TransactionOutput{
			TransactionID: id,
			Index:         index,
			Amount:        output.Amount,
		}
		if output.ScriptPublicKey != nil {
			converted.ScriptPublicKey = output.ScriptPublicKey.Script
		}
		if output.VerboseData != nil {
			converted.ScriptPublicKeyAddress = output.VerboseData.ScriptPublicKeyAddress
			converted.ScriptPublicKeyType = output.VerboseData.ScriptPublicKeyType
		}
		tx.Outputs = append(tx.Outputs, converted)
	}

	return tx, nil
}
