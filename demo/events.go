package demo

import (
	"github.com/dmitrymomot/viewkit"
	"github.com/dmitrymomot/viewkit/demo/pages"
	"github.com/dmitrymomot/viewkit/pkg/logger"
)

// events is the live-update stream every page opens on load. Each theme
// reload morphs the page's theme stylesheet in place; the subscription ends
// when the client disconnects or the gallery closes.
func (g *Gallery) events(ctx viewkit.Context, _ noArgs) viewkit.Response {
	return viewkit.SSE(func(stream viewkit.StreamContext) error {
		sub := g.reloads.Subscribe(stream)
		defer sub.Close()

		for {
			select {
			case <-stream.Done():
				return nil
			case t, ok := <-sub.C():
				if !ok {
					return nil
				}
				if err := stream.SendComponent(pages.ThemeStyle(t)); err != nil {
					g.log.Warn("theme patch not delivered", logger.Error(err))
					return err
				}
			}
		}
	})
}
