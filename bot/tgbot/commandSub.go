package tgbot

import (
	"github.com/assodanse/assoserver/bot/botstorage"
	"github.com/assodanse/assoserver/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type SubCommand struct {
	botStorage botstorage.BotStorage
	sub        func(int)
}

func (c *SubCommand) Run(user model.User, _ string, resp *tgbotapi.MessageConfig) (string, error) {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	err := c.botStorage.Subscribe(user, model.NewEvent)
	if err != nil {
		return "", err
	}
	c.sub(user.ID)
	return "Abonnement enregistré, pour vous désabonner : /unsub", nil
}

func (c *SubCommand) Help() string {
	return "s'abonner aux annonces d'événements"
}

func (c *SubCommand) Permission() mapset.Set[model.UserRole] {
	return everyone()
}

func (c *SubCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone()
}
