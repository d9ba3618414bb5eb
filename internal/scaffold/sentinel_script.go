package scaffold

import "fmt"

// sentinelScript is written to scripts/sentinel.sh. It hands off to the
// architect binary, which does the watching.
func sentinelScript(agentDir string) string {
	return fmt.Sprintf(`#!/bin/sh
# Antigravity Sentinel: watch critical files and re-run the doctor on change.
set -eu
cd "$(dirname "$0")/.."
if ! command -v architect >/dev/null 2>&1; then
  echo "Sentinel: architect is not on PATH" >&2
  exit 1
fi
if [ "${1:-}" = "--once" ]; then
  exec architect doctor . --fix
fi
exec architect sentinel . --agent-dir %s
`, agentDir)
}
