package usecase

import (
	"fmt"
	"math/big"

	"github.com/bwmarrin/discordgo"

	"github.com/x-xyz/goauction/base/ctx"
	pricefomatter "github.com/x-xyz/goauction/base/price_fomatter"
	"github.com/x-xyz/goauction/domain/auction"
)

type DiscordConfig struct {
	BotKey    string
	ChannelId string
	Formatter pricefomatter.PriceFormatter
}

// embedSender is the part of discordgo.Session the notifier uses.
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordHandler struct {
	channelId string
	formatter pricefomatter.PriceFormatter
	discord   embedSender
}

// NewDiscordHandler posts settlements to a discord channel.
func NewDiscordHandler(config DiscordConfig) (Handler, error) {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", config.BotKey))
	if err != nil {
		return nil, err
	}
	return &discordHandler{config.ChannelId, config.Formatter, discord}, nil
}

func (h *discordHandler) Name() string {
	return "discord"
}

func (h *discordHandler) Handle(c ctx.Ctx, ev auction.Event) error {
	if ev.Type != auction.EventAuctionSettled {
		return nil
	}

	msg := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Auction #%d settled", ev.AuctionId),
		Description: "No bids, asset returned to seller",
	}
	if ev.Amount != "" && ev.Amount != "0" {
		msg.Description = "Item sold!"
		msg.Fields = []*discordgo.MessageEmbedField{
			{Name: "Winner", Value: string(ev.Account)},
			{Name: "Price", Value: h.price(c, ev)},
		}
		if usd, ok := new(big.Int).SetString(ev.UsdValue, 10); ok {
			msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: "USD", Value: h.formatter.DisplayUsd(usd).StringFixed(2)})
		}
	}

	if _, err := h.discord.ChannelMessageSendEmbed(h.channelId, msg); err != nil {
		return err
	}
	return nil
}

func (h *discordHandler) price(c ctx.Ctx, ev auction.Event) string {
	raw, ok := new(big.Int).SetString(ev.Amount, 10)
	if !ok {
		return ev.Amount
	}
	display, err := h.formatter.DisplayAmount(c, ev.Unit, raw)
	if err != nil {
		return fmt.Sprintf("%s (raw) %s", ev.Amount, ev.Unit)
	}
	symbol := string(ev.Unit)
	if ev.Unit.IsNative() {
		symbol = "ETH"
	}
	return fmt.Sprintf("%s %s", display.String(), symbol)
}
