package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestLoadKey(t *testing.T) {
	req := require.New(t)
	priv, pub, err := GenerateKey()
	req.NoError(err)
	hexKey := hexutil.Encode(crypto.FromECDSA(priv))

	key, addr, err := LoadKey(hexKey)
	req.NoError(err)
	req.Equal(crypto.PubkeyToAddress(*pub), addr)
	req.Equal(priv.D, key.D)

	_, addr2, err := LoadKey(hexKey[2:])
	req.NoError(err)
	req.Equal(addr, addr2)

	_, _, err = LoadKey("0xnothex")
	req.Error(err)
}
