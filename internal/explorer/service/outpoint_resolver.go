package service

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
	"go.uber.org/zap"
)

// PreviousOutpointResolver attaches the outputs spent by inputs using one repository query per call.
type PreviousOutpointResolver struct {
	logger  *zap.Logger
	repo    OutpointRepository
	decoder ScriptDecoder
	network model.Network
}

func NewPreviousOutpointResolver(repo OutpointRepository, decoder ScriptDecoder, network model.Network, logger *zap.Logger) *PreviousOutpointResolver {
	return &PreviousOutpointResolver{
		logger:  logger.Named("outpointResolver"),
		repo:    repo,
		decoder: decoder,
		network: network,
	}
}

// Resolve returns a copy of inputs with resolution fields set according to mode.
// Inputs whose previous output is not stored keep nil resolution fields.
func (r *PreviousOutpointResolver) Resolve(ctx context.Context, inputs []model.TransactionInput, mode model.ResolveMode) ([]model.TransactionInput, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown resolve mode %q", model.ErrInvalidRequest, mode)
	}

	resolved := make([]model.TransactionInput, len(inputs))
	copy(resolved, inputs)
	for i := range resolved {
		resolved[i].ClearResolution()
	}
	if !mode.Resolves() || len(resolved) == 0 {
		return resolved, nil
	}

	outpoints := mapset.NewThreadUnsafeSetWithSize[model.Outpoint](len(resolved))
	for _, in := range resolved {
		outpoints.Add(in.PreviousOutpoint)
	}

	outputs, err := r.repo.PreviousOutputs(ctx, r.network, outpoints.ToSlice())
	if err != nil {
		return nil, fmt.Errorf("query previous outputs: %w", err)
	}

	completed := make(map[model.Outpoint]model.TransactionOutput, len(outputs))
	unresolved := 0
	for i := range resolved {
		in := &resolved[i]
		output, ok := completed[in.PreviousOutpoint]
		if !ok {
			stored, found := outputs[in.PreviousOutpoint]
			if !found {
				unresolved++
				continue
			}
			output = r.completeOutput(stored, mode)
			completed[in.PreviousOutpoint] = output
		}

		amount := output.Amount
		in.PreviousOutpointAmount = &amount
		if output.ScriptPublicKey != "" {
			script := output.ScriptPublicKey
			in.PreviousOutpointScript = &script
		}
		if output.ScriptPublicKeyAddress != "" {
			address := output.ScriptPublicKeyAddress
			in.PreviousOutpointAddress = &address
		}
		if mode == model.ResolveFull {
			nested := output
			in.PreviousOutpointResolved = &nested
		}
	}

	if unresolved > 0 {
		r.logger.Debug("previous outpoints not found",
			zap.Int("unresolved", unresolved),
			zap.Int("inputs", len(resolved)),
		)
	}

	return resolved, nil
}

// completeOutput derives the address from the script when the indexer did not store one and,
// in full mode, classifies the script.
func (r *PreviousOutpointResolver) completeOutput(output model.TransactionOutput, mode model.ResolveMode) model.TransactionOutput {
	if output.ScriptPublicKeyAddress == "" && output.ScriptPublicKey != "" {
		address, err := r.decoder.Address(output.ScriptPublicKey)
		if err != nil {
			r.logger.Debug("derive address from script",
				zap.String("transaction_id", output.TransactionID),
				zap.Uint32("index", output.Index),
				zap.Error(err),
			)
		} else {
			output.ScriptPublicKeyAddress = address
		}
	}
	if mode == model.ResolveFull && output.ScriptPublicKeyType == "" && output.ScriptPublicKey != "" {
		output.ScriptPublicKeyType = r.decoder.ScriptType(output.ScriptPublicKey)
	}
	return output
}
