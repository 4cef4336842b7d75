package model

// BlockHeader is the subset of block data needed to describe an acceptance.
type BlockHeader struct {
	Hash      string
	BlueScore uint64
	DAAScore  uint64
	// Timestamp is epoch milliseconds.
	Timestamp int64
}

// NodeBlock is a block as returned by a node, with its transactions mapped to the stored form.
type NodeBlock struct {
	Header       BlockHeader
	Transactions []Transaction
}

// Transaction looks up a transaction of the block by id.
func (b *NodeBlock) Transaction(id string) (Transaction, bool) {
	for _, tx := range b.Transactions {
		if tx.TransactionID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// NodeInfo reports the state of the connected node.
type NodeInfo struct {
	P2PID         string
	ServerVersion string
	IsSynced      bool
	IsUtxoIndexed bool
}
