package generate

import "context"

// TextModel is the outbound boundary to the generative text service. The
// service returns free text that is expected, but not guaranteed, to
// contain JSON.
type TextModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
