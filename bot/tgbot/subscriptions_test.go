package tgbot

import (
	"testing"

	botmodel "github.com/assodanse/assoserver/bot/model"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptions(t *testing.T) {
	subs := newSubs()

	assert.Empty(t, subs.GetUserIDs(botmodel.NewEvent))

	subs.Add(botmodel.NewEvent, 1)
	subs.Add(botmodel.NewEvent, 2)
	subs.Add(botmodel.NewEvent, 1)
	assert.ElementsMatch(t, []int{1, 2}, subs.GetUserIDs(botmodel.NewEvent))

	subs.Remove(botmodel.NewEvent, 1)
	assert.ElementsMatch(t, []int{2}, subs.GetUserIDs(botmodel.NewEvent))

	subs.Remove("unknown", 2)
	assert.ElementsMatch(t, []int{2}, subs.GetUserIDs(botmodel.NewEvent))
}
