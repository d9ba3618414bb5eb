package knowledge

// NixBasePackages are always present in .idx/dev.nix.
var NixBasePackages = []string{"pkgs.git", "pkgs.curl", "pkgs.jq", "pkgs.openssl"}

// NixPackages maps a language keyword to the Nix packages it needs.
var NixPackages = map[string][]string{
	"python": {"pkgs.python312", "pkgs.python312Packages.pip", "pkgs.ruff", "pkgs.python312Packages.virtualenv"},
	"node":   {"pkgs.nodejs_20", "pkgs.nodePackages.nodemon", "pkgs.nodePackages.typescript"},
	"rust":   {"pkgs.cargo", "pkgs.rustc", "pkgs.rustfmt"},
	"go":     {"pkgs.go", "pkgs.gopls"},
	"java":   {"pkgs.jdk17", "pkgs.maven"},
	"php":    {"pkgs.php", "pkgs.php82Packages.composer"},
	"ruby":   {"pkgs.ruby"},
	"docker": {"pkgs.docker", "pkgs.docker-compose"},
	"sql":    {"pkgs.sqlite", "pkgs.postgresql"},
}

// NixAliases maps frameworks to the language whose toolchain they need.
// It is applied after Aliases.
var NixAliases = map[string]string{
	"react":    "node",
	"nextjs":   "node",
	"django":   "python",
	"flask":    "python",
	"postgres": "sql",
}
