package models

type SignMessageRequest struct {
	Secret  string
	Message string
}

type VerifyMessageRequest struct {
	PublicKey string
	Signature string // base64
	Message   string
}

type InitializeMintRequest struct {
	MintAuthority string
	Mint          string
	Decimals      uint8
}

type MintToRequest struct {
	Mint        string
	Destination string
	Authority   string
	Amount      uint64
}

type TransferSOLRequest struct {
	From     string
	To       string
	Lamports uint64
}

type TransferTokenRequest struct {
	Mint        string
	Owner       string
	Destination string
	Amount      uint64
}

type DeriveATARequest struct {
	Owner string
	Mint  string
}

type CreateATARequest struct {
	Funder string
	Owner  string
	Mint   string
}
