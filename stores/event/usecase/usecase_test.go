package usecase

import (
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	pricefomatter "github.com/x-xyz/goauction/base/price_fomatter"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/mocks"
	"github.com/x-xyz/goauction/stores/event/repository"
)

var (
	mockCtx = ctx.Background()
	winner  = domain.Address("0x00000000000000000000000000000000000000b1")
)

type recordHandler struct {
	mu     sync.Mutex
	events []auction.Event
	err    error
}

func (h *recordHandler) Name() string {
	return "record"
}

func (h *recordHandler) Handle(c ctx.Ctx, ev auction.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
	return h.err
}

func (h *recordHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.events)
}

type fakeDiscord struct {
	sent []*discordgo.MessageEmbed
}

func (f *fakeDiscord) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	f.sent = append(f.sent, embed)
	return &discordgo.Message{}, nil
}

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) TestDispatcherFansOut() {
	ok := &recordHandler{}
	failing := &recordHandler{err: xerrors.New("down")}
	d := NewDispatcher(2, ok, failing)

	d.Emit(mockCtx, auction.Event{Type: auction.EventBidPlaced, AuctionId: 1})
	d.Emit(mockCtx, auction.Event{Id: "fixed", Type: auction.EventAuctionSettled, AuctionId: 1})
	d.Close()

	t.Eventually(func() bool { return ok.count() == 2 && failing.count() == 2 }, time.Second, 10*time.Millisecond)
	ok.mu.Lock()
	defer ok.mu.Unlock()
	ids := map[string]bool{}
	for _, ev := range ok.events {
		t.NotEmpty(ev.Id)
		ids[ev.Id] = true
	}
	t.True(ids["fixed"])
}

func (t *testsuite) TestHistoryHandler() {
	repo := repository.NewMemory()
	h := NewHistoryHandler(repo)
	t.NoError(h.Handle(mockCtx, auction.Event{Id: "x", AuctionId: 5, Type: auction.EventAuctionCreated}))

	res, err := repo.FindByAuction(mockCtx, 5, 0, 0)
	t.NoError(err)
	t.Len(res, 1)
}

func (t *testsuite) TestDiscordSettled() {
	fake := &fakeDiscord{}
	feeds := &mocks.PriceFeedRepo{}
	h := &discordHandler{channelId: "c", formatter: pricefomatter.NewPriceFormatter(feeds), discord: fake}

	usd := new(big.Int).Mul(big.NewInt(2000), domain.Pow10(18))
	t.NoError(h.Handle(mockCtx, auction.Event{
		Type:      auction.EventAuctionSettled,
		AuctionId: 9,
		Account:   winner,
		Unit:      domain.NativeUnit,
		Amount:    domain.Pow10(18).String(),
		UsdValue:  usd.String(),
	}))
	t.NoError(h.Handle(mockCtx, auction.Event{Type: auction.EventBidPlaced}))

	t.Require().Len(fake.sent, 1)
	msg := fake.sent[0]
	t.Equal("Auction #9 settled", msg.Title)
	t.Equal("1 ETH", msg.Fields[1].Value)
	t.Equal("2000.00", msg.Fields[2].Value)
}

func (t *testsuite) TestDiscordNoBids() {
	fake := &fakeDiscord{}
	h := &discordHandler{channelId: "c", formatter: pricefomatter.NewPriceFormatter(&mocks.PriceFeedRepo{}), discord: fake}

	t.NoError(h.Handle(mockCtx, auction.Event{Type: auction.EventAuctionSettled, AuctionId: 2, Amount: "0"}))
	t.Require().Len(fake.sent, 1)
	t.Empty(fake.sent[0].Fields)
}
