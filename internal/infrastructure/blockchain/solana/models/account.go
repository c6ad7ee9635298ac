package models

type Account struct {
	PublicKey  string
	PrivateKey string
}
