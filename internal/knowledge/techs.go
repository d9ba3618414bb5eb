package knowledge

// TechDescriptions feeds the TECH_STACK.md deep dive.
var TechDescriptions = map[string]string{
	"python":   "General purpose language. Prefer virtual environments and pin dependencies in pyproject.toml.",
	"node":     "JavaScript runtime. Lock dependencies with package-lock.json and keep scripts in package.json.",
	"rust":     "Systems language with ownership semantics. Use cargo for builds, clippy for lints.",
	"go":       "Compiled language with a small standard toolchain. Use go modules and gofmt.",
	"java":     "JVM language. Build with Maven or Gradle and keep sources under src/main/java.",
	"php":      "Server-side scripting language. Manage packages with Composer.",
	"ruby":     "Dynamic language. Manage gems with Bundler.",
	"docker":   "Container runtime. Keep images small and pin base image tags.",
	"postgres": "Relational database. Keep schema changes in versioned migrations.",
	"react":    "Component UI library. Prefer function components and hooks.",
	"nextjs":   "React framework with file-based routing and server rendering.",
	"django":   "Batteries-included Python web framework. Keep settings per environment.",
	"flask":    "Minimal Python web framework. Use blueprints to split the app.",
	"macos":    "Target platform: macOS.",
	"windows":  "Target platform: Windows. Watch path separators and line endings.",
	"linux":    "Target platform: Linux.",
	"vscode":   "Editor settings are committed under .vscode/.",
	"idea":     "JetBrains IDE project files are ignored.",
	"gitea":    "Self-hosted forge. CI lives under .gitea/workflows.",
}

// Observation is a hint drawn from brain-dump prose.
type Observation struct {
	Pattern string
	Note    string
}

// Observations are matched case-insensitively against the brain dump.
var Observations = []Observation{
	{`\b(api|rest|graphql|endpoint|fastapi|express)s?\b`, "API surface detected: document endpoints and keep request validation at the boundary."},
	{`\b(database|sql|postgres|mysql|sqlite|mongo)\b`, "Persistent storage detected: keep migrations versioned and never commit credentials."},
	{`\b(docker|container|kubernetes|k8s)\b`, "Containerized deployment detected: keep images reproducible."},
	{`\b(test|tests|testing|pytest|jest)\b`, "Testing mentioned: keep tests next to the code they cover and run them in CI."},
	{`\b(auth|oauth|jwt|login)\b`, "Authentication detected: follow the security rule for secrets and sessions."},
}
