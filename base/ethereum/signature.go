package ethereum

import (
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"
)

// RecoverMsgSigner returns the account whose personal_sign over message produced signature.
func RecoverMsgSigner(message []byte, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, err
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, xerrors.Errorf("signature must be %d bytes long, got %d", crypto.SignatureLength, len(sig))
	}

	// wallets answer eth_sign with V as 27/28, go-ethereum signs with 0/1
	v := sig[crypto.RecoveryIDOffset]
	if v >= 27 {
		v -= 27
	}
	if v > 1 {
		return common.Address{}, xerrors.Errorf("invalid signature recovery id %d", sig[crypto.RecoveryIDOffset])
	}
	sig[crypto.RecoveryIDOffset] = v

	pub, err := crypto.SigToPub(accounts.TextHash(message), sig)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// ValidateMsgSignature reports whether signature is signer's personal_sign over message.
func ValidateMsgSignature(message []byte, signature, signer string) (bool, error) {
	recovered, err := RecoverMsgSigner(message, signature)
	if err != nil {
		return false, err
	}
	return recovered == common.HexToAddress(signer), nil
}
