package tgbot

import (
	"sort"
	"strings"

	"github.com/assodanse/assoserver/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type HelpCommand struct {
	commands *Commands
}

func (c *HelpCommand) Run(user model.User, _ string, _ *tgbotapi.MessageConfig) (string, error) {
	names := make([]string, 0, len(c.commands.list))
	for name, cmd := range c.commands.list {
		if name == "start" {
			continue
		}
		if !cmd.Visibility().Contains(user.Role) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString("Commandes disponibles :\n")
	for _, name := range names {
		b.WriteString("/" + name + " — " + c.commands.list[name].Help() + "\n")
	}
	return b.String(), nil
}

func (c *HelpCommand) Help() string {
	return "afficher cette aide"
}

func (c *HelpCommand) Permission() mapset.Set[model.UserRole] {
	return everyone()
}

func (c *HelpCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone()
}
