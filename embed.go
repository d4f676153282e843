package embedded

import "embed"

//go:embed "migrations/server"
var ServerMigrations embed.FS

//go:embed "migrations/auth"
var AuthMigrations embed.FS

//go:embed "migrations/bot"
var BotMigrations embed.FS
