package encounter

import "context"

// Option is one numbered menu entry.
type Option struct {
	Number int
	Label  string
}

// Prompt is a titled menu offered to the player.
type Prompt struct {
	Title   string
	Options []Option
}

// Prompter obtains the player's numeric selections.
type Prompter interface {
	// Choose presents p and returns the selected number. Numbers that match no
	// option are returned as-is; the engine treats them as invalid.
	//
	// Postcondition: a non-nil error ends the campaign.
	Choose(ctx context.Context, p Prompt) (int, error)
}

// PrompterFunc adapts a function into a Prompter.
type PrompterFunc func(ctx context.Context, p Prompt) (int, error)

// Choose calls f.
func (f PrompterFunc) Choose(ctx context.Context, p Prompt) (int, error) { return f(ctx, p) }
