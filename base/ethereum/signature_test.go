package ethereum

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMsgSignature(t *testing.T) {
	messageTemplate := "Sign in to the auction house as %s"
	privateKey, publicKey, err := GenerateKey()
	assert.NoError(t, err)
	address := crypto.PubkeyToAddress(*publicKey).Hex()
	message := []byte(fmt.Sprintf(messageTemplate, address))
	signature, err := crypto.Sign(accounts.TextHash(message), privateKey)
	assert.NoError(t, err)

	res, err := ValidateMsgSignature(message, hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.True(t, res)

	// other message
	res2, err := ValidateMsgSignature([]byte("654321"), hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.False(t, res2)

	// other signer
	_, pubKey, err := GenerateKey()
	assert.NoError(t, err)
	res3, err := ValidateMsgSignature(message, hexutil.Encode(signature), crypto.PubkeyToAddress(*pubKey).Hex())
	assert.NoError(t, err)
	assert.False(t, res3)
}

func TestRecoverMsgSignerWalletV(t *testing.T) {
	req := require.New(t)
	privateKey, publicKey, err := GenerateKey()
	req.NoError(err)
	message := []byte("bid on auction 1")
	signature, err := crypto.Sign(accounts.TextHash(message), privateKey)
	req.NoError(err)

	// wallets report V as 27/28
	signature[crypto.RecoveryIDOffset] += 27
	signer, err := RecoverMsgSigner(message, hexutil.Encode(signature))
	req.NoError(err)
	req.Equal(crypto.PubkeyToAddress(*publicKey), signer)

	signature[crypto.RecoveryIDOffset] = 30
	_, err = RecoverMsgSigner(message, hexutil.Encode(signature))
	req.Error(err)
}

func TestValidateMsgSignatureMalformed(t *testing.T) {
	req := require.New(t)
	_, err := ValidateMsgSignature([]byte("login"), "0xzz", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	req.Error(err)
	_, err = ValidateMsgSignature([]byte("login"), "0x1234", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	req.Error(err)
}
