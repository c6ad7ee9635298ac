package messages

type SignInput struct {
	Message string `json:"message" validate:"required"`
	Secret  string `json:"secret" validate:"required"`
}

// VerifyInput allows an empty message; an empty string is still signable.
type VerifyInput struct {
	Message   string `json:"message"`
	Signature string `json:"signature" validate:"required"`
	Pubkey    string `json:"pubkey" validate:"required"`
}

type SignatureDTO struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
}

type VerificationDTO struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}
