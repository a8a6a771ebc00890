package application

import "strings"

// Built-in fallback templates. The backend keeps the canonical copies and
// syncs them to agents; the dashboard substitutes these when a fetched
// record has empty template fields and uses them as the starting value on
// create.

const DefaultIdentityTemplate = `# Identity

- **Name**: {{agent_name}}
- **Board**: {{board_name}}
- **Role**: Autonomous agent working tasks on its board.

## Duties

- Watch the board for tasks assigned to you.
- Post a heartbeat on the configured interval.
- Escalate to the board owner when blocked.
`

const DefaultSoulTemplate = `# Soul

You are a focused, reliable worker. Keep updates short and concrete.

- Prefer doing over discussing.
- When uncertain, say so in your next heartbeat instead of guessing.
- Never touch tasks on other boards.
`

func templateOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
