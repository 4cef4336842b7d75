package clickhouse

import "github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"

const addressScriptsUnion = `(
	SELECT network, script_public_key AS script, transaction_id, block_time
	FROM explorer_transactions_outputs
	UNION ALL
	SELECT network, previous_outpoint_script AS script, transaction_id, block_time
	FROM explorer_transactions_inputs
)`

// AddressIndex reads the address to transaction mapping. It uses the dedicated index table when
// the startup probe found one and falls back to output and spent-outpoint scripts otherwise.
type AddressIndex struct {
	repo   *Repository
	source string
}

func (r *Repository) AddressIndex(caps model.Capabilities) *AddressIndex {
	source := addressScriptsUnion
	if caps.AddressIndex {
		source = addressesTransactionsTable
	}
	return &AddressIndex{repo: r, source: source}
}
