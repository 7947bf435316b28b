package common

type Log struct {
	BlockNumber      uint64   `json:"block_number"`
	BlockHash        string   `json:"block_hash"`
	TransactionHash  string   `json:"transaction_hash"`
	TransactionIndex uint64   `json:"transaction_index"`
	LogIndex         uint64   `json:"log_index"`
	Address          string   `json:"address"`
	Data             string   `json:"data"`
	Topics           []string `json:"topics"`
}

// Topic returns the topic at index i or an empty string.
func (l Log) Topic(i int) string {
	if i < 0 || i >= len(l.Topics) {
		return ""
	}
	return l.Topics[i]
}
