package memcache_fx

import (
	"go.uber.org/fx"
	mem "guidebot/pkg/memcache"
)

var Module = fx.Provide(provideConversationStore)

func provideConversationStore() mem.ConversationStore {
	return mem.NewConversationWindows(mem.DefaultWindowCapacity)
}
