package models

import (
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
)

// Transfer is an SPL token transfer between the associated token
// accounts of two owners.
type Transfer struct {
	Instruction    types.Instruction
	SourceATA      common.PublicKey
	DestinationATA common.PublicKey
}
