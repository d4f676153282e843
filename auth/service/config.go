package service

type Config struct {
	SqliteFile    string `toml:"sqlite_file"`
	Token         string `toml:"token"`
	Expiration    string `toml:"expiration"`
	AdminEmail    string `toml:"admin_email"`
	AdminPassword string `toml:"admin_password"`
	Rules         []Rule `toml:"rules"`
}

// Rule gates a set of routes: the first rule whose path regexp and method
// match decides which roles may pass. Allow "*" means anonymous access.
type Rule struct {
	Name   string   `toml:"name"`
	Path   string   `toml:"path"`
	Method []string `toml:"method"`
	Allow  []string `toml:"allow"`
	Order  int      `toml:"order"`
}
