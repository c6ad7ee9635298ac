package transfers

type SendSOLInput struct {
	From     string `json:"from" validate:"required"`
	To       string `json:"to" validate:"required"`
	Lamports uint64 `json:"lamports" validate:"gt=0"`
}

type SendTokenInput struct {
	Destination string `json:"destination" validate:"required"`
	Mint        string `json:"mint" validate:"required"`
	Owner       string `json:"owner" validate:"required"`
	Amount      uint64 `json:"amount" validate:"gt=0"`
}

type SOLTransferDTO struct {
	ProgramID       string   `json:"program_id"`
	Accounts        []string `json:"accounts"`
	InstructionData string   `json:"instruction_data"`
	Lamports        uint64   `json:"lamports"`
	AmountSOL       string   `json:"amount_sol"`
}

type TokenTransferAccountDTO struct {
	Pubkey   string `json:"pubkey"`
	IsSigner bool   `json:"is_signer"`
}

type TokenTransferDTO struct {
	ProgramID       string                    `json:"program_id"`
	Accounts        []TokenTransferAccountDTO `json:"accounts"`
	InstructionData string                    `json:"instruction_data"`
}
