package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/melih/lighthouse-info/internal/core/domain"
	"github.com/melih/lighthouse-info/internal/core/ports"
)

// RenderOnce fetches once and writes the rendered view to w. On failure the
// placeholder state is written and the fetch error returned.
func RenderOnce(ctx context.Context, f ports.InfoFetcher, theme Theme, w io.Writer) error {
	state := domain.Detecting()
	info, err := f.Fetch(ctx)
	if err == nil {
		state = info
	}
	if _, werr := fmt.Fprintln(w, Render(state, &theme)); werr != nil {
		return werr
	}
	return err
}
