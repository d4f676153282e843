package tgbot

import (
	"strings"

	"github.com/assodanse/assoserver/bot/botstorage"
	"github.com/assodanse/assoserver/bot/model"
	"github.com/assodanse/assoserver/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Command interface {
	Run(user model.User, args string, resp *tgbotapi.MessageConfig) (string, error)
	Help() string
	Permission() mapset.Set[model.UserRole]
	Visibility() mapset.Set[model.UserRole]
}

type Commands struct {
	list map[string]Command
}

func NewCommands(
	site *service.SiteService,
	bs botstorage.BotStorage,
	subFn func(id int),
	unsubFn func(id int),
) *Commands {
	uc := Commands{
		list: map[string]Command{
			"events": &EventsCommand{
				site: site,
			},
			"sub": &SubCommand{
				botStorage: bs,
				sub:        subFn,
			},
			"unsub": &UnsubCommand{
				botStorage: bs,
				unsub:      unsubFn,
			},
		},
	}
	hc := &HelpCommand{commands: &uc}
	uc.list["help"] = hc
	uc.list["start"] = hc
	return &uc
}

func (c *Commands) Run(user model.User, message *tgbotapi.Message, resp *tgbotapi.MessageConfig) error {
	name := strings.TrimPrefix(message.Command(), "/")
	if name == "" {
		name = "help"
	}
	cmd, ok := c.list[name]
	if !ok {
		return ErrBadRequest
	}
	if !cmd.Permission().Contains(user.Role) {
		return ErrBadRequest
	}
	text, err := cmd.Run(user, message.CommandArguments(), resp)
	if err != nil {
		return err
	}
	resp.Text = text
	return nil
}

func everyone() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleUser)
}
