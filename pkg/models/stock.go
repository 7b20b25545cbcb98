package models

import "strings"

const priceChannelPrefix = "prices."

// StockUpdate is the wire form of one price change, as relayed to Redis and
// Kafka and consumed by the watcher.
type StockUpdate struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Timestamp int64   `json:"timestamp"` // unix micro
	SeqID     int64   `json:"seq_id"`    // monotonic counter per symbol
}

// PriceChannel returns the pub/sub channel carrying updates for symbol.
func PriceChannel(symbol string) string {
	return priceChannelPrefix + symbol
}

// SymbolFromChannel is the inverse of PriceChannel. ok is false for channels
// outside the price namespace.
func SymbolFromChannel(channel string) (symbol string, ok bool) {
	symbol, ok = strings.CutPrefix(channel, priceChannelPrefix)
	if !ok || symbol == "" {
		return "", false
	}
	return symbol, true
}
