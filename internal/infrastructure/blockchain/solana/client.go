package sdk

import (
	"crypto/ed25519"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/program/token"
	"github.com/blocto/solana-go-sdk/types"
	entities "github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana/mappers"
	models "github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana/models"
)

// Client builds instructions and signatures offline. Nothing it returns
// is submitted to a cluster.
type Client struct{}

func NewClient() *Client {
	return &Client{}
}

// SignMessage signs the raw message bytes with the decoded secret.
func (c *Client) SignMessage(req models.SignMessageRequest) (entities.SignedMessage, error) {
	account, err := AccountFromSecret("secret", req.Secret)
	if err != nil {
		return entities.SignedMessage{}, err
	}

	return entities.SignedMessage{
		Signature: account.Sign([]byte(req.Message)),
		PublicKey: entities.PublicKey(account.PublicKey.ToBase58()),
		Message:   req.Message,
	}, nil
}

// VerifyMessage returns false for a well-formed signature that does not
// match; only malformed encodings produce an error.
func (c *Client) VerifyMessage(req models.VerifyMessageRequest) (bool, error) {
	pub, err := ParsePublicKey("pubkey", req.PublicKey)
	if err != nil {
		return false, err
	}
	signature, err := decodeSignature("signature", req.Signature)
	if err != nil {
		return false, err
	}
	return ed25519.Verify(ed25519.PublicKey(pub.Bytes()), []byte(req.Message), signature), nil
}

// InitializeMint builds token.InitializeMint with the mint authority also
// acting as freeze authority.
func (c *Client) InitializeMint(req models.InitializeMintRequest) (entities.Instruction, error) {
	mintAuthority, err := ParsePublicKey("mint_authority", req.MintAuthority)
	if err != nil {
		return entities.Instruction{}, err
	}
	mint, err := ParsePublicKey("mint", req.Mint)
	if err != nil {
		return entities.Instruction{}, err
	}

	freezeAuthority := mintAuthority
	inst := token.InitializeMint(token.InitializeMintParam{
		Decimals:   req.Decimals,
		Mint:       mint,
		MintAuth:   mintAuthority,
		FreezeAuth: &freezeAuthority,
	})
	return mappers.FromInstruction(inst), nil
}

// MintTo mints tokens to a destination token account
func (c *Client) MintTo(req models.MintToRequest) (entities.Instruction, error) {
	mint, err := ParsePublicKey("mint", req.Mint)
	if err != nil {
		return entities.Instruction{}, err
	}
	dest, err := ParsePublicKey("destination", req.Destination)
	if err != nil {
		return entities.Instruction{}, err
	}
	authority, err := ParsePublicKey("authority", req.Authority)
	if err != nil {
		return entities.Instruction{}, err
	}

	inst := token.MintTo(token.MintToParam{
		Mint:    mint,
		To:      dest,
		Auth:    authority,
		Signers: []common.PublicKey{},
		Amount:  req.Amount,
	})
	return mappers.FromInstruction(inst), nil
}

// TransferSOL builds a system program transfer of lamports from -> to
func (c *Client) TransferSOL(req models.TransferSOLRequest) (entities.Instruction, error) {
	from, err := ParsePublicKey("from", req.From)
	if err != nil {
		return entities.Instruction{}, err
	}
	to, err := ParsePublicKey("to", req.To)
	if err != nil {
		return entities.Instruction{}, err
	}

	inst := system.Transfer(system.TransferParam{
		From:   from,
		To:     to,
		Amount: req.Lamports,
	})
	return mappers.FromInstruction(inst), nil
}

// TransferToken moves tokens from the owner's associated token account to
// the destination owner's associated token account, signed by owner.
func (c *Client) TransferToken(req models.TransferTokenRequest) (entities.TokenTransfer, error) {
	mint, err := ParsePublicKey("mint", req.Mint)
	if err != nil {
		return entities.TokenTransfer{}, err
	}
	owner, err := ParsePublicKey("owner", req.Owner)
	if err != nil {
		return entities.TokenTransfer{}, err
	}
	destination, err := ParsePublicKey("destination", req.Destination)
	if err != nil {
		return entities.TokenTransfer{}, err
	}

	sourceATA, err := deriveAssociatedTokenAddress(owner, mint)
	if err != nil {
		return entities.TokenTransfer{}, err
	}
	destinationATA, err := deriveAssociatedTokenAddress(destination, mint)
	if err != nil {
		return entities.TokenTransfer{}, err
	}

	inst := token.Transfer(token.TransferParam{
		From:    sourceATA,
		To:      destinationATA,
		Auth:    owner,
		Signers: []common.PublicKey{},
		Amount:  req.Amount,
	})
	return mappers.FromTransfer(models.Transfer{
		Instruction:    inst,
		SourceATA:      sourceATA,
		DestinationATA: destinationATA,
	}), nil
}

// DeriveAssociatedTokenAddress derives ATA PDA for owner+mint
func (c *Client) DeriveAssociatedTokenAddress(req models.DeriveATARequest) (string, error) {
	owner, err := ParsePublicKey("owner", req.Owner)
	if err != nil {
		return "", err
	}
	mint, err := ParsePublicKey("mint", req.Mint)
	if err != nil {
		return "", err
	}
	pda, err := deriveAssociatedTokenAddress(owner, mint)
	if err != nil {
		return "", err
	}
	return pda.ToBase58(), nil
}

// CreateAssociatedTokenAccount builds the associated token account program
// create instruction for (owner, mint), paid for by funder.
func (c *Client) CreateAssociatedTokenAccount(req models.CreateATARequest) (entities.TokenAccount, error) {
	funder, err := ParsePublicKey("funder", req.Funder)
	if err != nil {
		return entities.TokenAccount{}, err
	}
	owner, err := ParsePublicKey("owner", req.Owner)
	if err != nil {
		return entities.TokenAccount{}, err
	}
	mint, err := ParsePublicKey("mint", req.Mint)
	if err != nil {
		return entities.TokenAccount{}, err
	}

	ata, err := deriveAssociatedTokenAddress(owner, mint)
	if err != nil {
		return entities.TokenAccount{}, err
	}

	inst := types.Instruction{
		ProgramID: common.SPLAssociatedTokenAccountProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: funder, IsSigner: true, IsWritable: true},
			{PubKey: ata, IsSigner: false, IsWritable: true},
			{PubKey: owner, IsSigner: false, IsWritable: false},
			{PubKey: mint, IsSigner: false, IsWritable: false},
			{PubKey: common.SystemProgramID, IsSigner: false, IsWritable: false},
			{PubKey: common.TokenProgramID, IsSigner: false, IsWritable: false},
			{PubKey: common.SysVarRentPubkey, IsSigner: false, IsWritable: false},
		},
		Data: []byte{},
	}

	return entities.TokenAccount{
		Instruction:            mappers.FromInstruction(inst),
		AssociatedTokenAddress: entities.PublicKey(ata.ToBase58()),
	}, nil
}

func deriveAssociatedTokenAddress(owner, mint common.PublicKey) (common.PublicKey, error) {
	seeds := [][]byte{
		owner.Bytes(),
		common.TokenProgramID.Bytes(),
		mint.Bytes(),
	}
	pda, _, err := common.FindProgramAddress(seeds, common.SPLAssociatedTokenAccountProgramID)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("%w: %v", ErrDerivationExceeded, err)
	}
	return pda, nil
}
