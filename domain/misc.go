package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"
)

var (
	Big0  = big.NewInt(0)
	Big10 = big.NewInt(10)
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// NativeUnit denotes the chain's native currency wherever a payment unit is expected.
const NativeUnit = EmptyAddress

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

// IsEmpty reports whether no address is set. The zero address counts as empty.
func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) IsNative() bool {
	return a.IsEmpty()
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

func AddressFromCommon(a common.Address) Address {
	return Address(a.Hex()).ToLower()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBig() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok || id.Sign() < 0 {
		return nil, xerrors.Errorf("invalid token id %s", i)
	}
	return id, nil
}

// AssetRef identifies one non-fungible asset.
type AssetRef struct {
	Contract Address `json:"contract" bson:"contract"`
	TokenId  TokenId `json:"tokenId" bson:"tokenId"`
}

func (r AssetRef) String() string {
	return r.Contract.ToLowerStr() + "/" + r.TokenId.String()
}

// Pow10 returns 10^n.
func Pow10(n uint8) *big.Int {
	return new(big.Int).Exp(Big10, big.NewInt(int64(n)), nil)
}

// ParseAmount parses a base-10 integer string into a *big.Int.
func ParseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, xerrors.Errorf("invalid amount %q: %w", s, ErrInvalidAmount)
	}
	return v, nil
}

type Table string

const (
	TableAuctions      Table = "auctions"
	TableCounters      Table = "counters"
	TablePriceFeeds    Table = "price_feeds"
	TableSettings      Table = "settings"
	TableRoleGrants    Table = "role_grants"
	TableBalances      Table = "balances"
	TableAuctionEvents Table = "auction_events"
)
