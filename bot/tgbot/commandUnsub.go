package tgbot

import (
	"github.com/assodanse/assoserver/bot/botstorage"
	"github.com/assodanse/assoserver/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type UnsubCommand struct {
	botStorage botstorage.BotStorage
	unsub      func(int)
}

func (c *UnsubCommand) Run(user model.User, _ string, resp *tgbotapi.MessageConfig) (string, error) {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	err := c.botStorage.Unsubscribe(user, model.NewEvent)
	if err != nil {
		return "", err
	}
	c.unsub(user.ID)
	return "Désabonnement effectué, pour vous réabonner : /sub", nil
}

func (c *UnsubCommand) Help() string {
	return "se désabonner des annonces"
}

func (c *UnsubCommand) Permission() mapset.Set[model.UserRole] {
	return everyone()
}

func (c *UnsubCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone()
}
