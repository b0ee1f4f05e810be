package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ChainlinkFeedABI covers the AggregatorV3Interface read methods.
var ChainlinkFeedABI abi.ABI

func init() {
	_abi, err := abi.JSON(strings.NewReader(chainlinkFeedABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	ChainlinkFeedABI = _abi
}

var chainlinkFeedABIJson = `
[
  {
    "inputs": [],
    "name": "decimals",
    "outputs": [{ "internalType": "uint8", "name": "", "type": "uint8" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "description",
    "outputs": [{ "internalType": "string", "name": "", "type": "string" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "latestRoundData",
    "outputs": [
      { "internalType": "uint80", "name": "roundId", "type": "uint80" },
      { "internalType": "int256", "name": "answer", "type": "int256" },
      { "internalType": "uint256", "name": "startedAt", "type": "uint256" },
      { "internalType": "uint256", "name": "updatedAt", "type": "uint256" },
      { "internalType": "uint80", "name": "answeredInRound", "type": "uint80" }
    ],
    "stateMutability": "view",
    "type": "function"
  }
]
`
