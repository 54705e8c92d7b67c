//go:build js && wasm

// Command portfolio-wasm runs the page behaviors in the browser.
//
// Build with GOOS=js GOARCH=wasm into the PORTFOLIO_WASM directory as
// portfolio.wasm, next to wasm_exec.js.
package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/Zachkp/portfolio/internal/animation/gsap"
	"github.com/Zachkp/portfolio/internal/dom/jsdom"
	"github.com/Zachkp/portfolio/internal/scheduler"
	"github.com/Zachkp/portfolio/internal/site"
)

func main() {
	// os.Stdout is the browser console under js/wasm.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	loop := scheduler.NewLoop(logger)
	window := js.Global()

	window.Call("addEventListener", "error", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			logger.Error("uncaught page error", "message", args[0].Get("message").String())
		}
		return nil
	}))

	boot := func() {
		doc := jsdom.New(loop)
		loop.Do(func() {
			s, err := site.Bind(site.Options{
				Document:  doc,
				Window:    jsdom.NewWindow(loop),
				Scheduler: loop,
				Driver:    gsap.New(doc),
				Logger:    logger,
			})
			if err != nil {
				logger.Error("portfolio failed to start", "error", err)
				return
			}
			expose(window, s, loop, logger)
		})
	}

	if window.Get("document").Get("readyState").String() == "loading" {
		window.Get("document").Call("addEventListener", "DOMContentLoaded", js.FuncOf(func(js.Value, []js.Value) any {
			go boot()
			return nil
		}))
	} else {
		boot()
	}

	select {}
}

// expose publishes the page entry points and the catalog on window. Calls
// are queued on the loop, so they return before running.
func expose(window js.Value, s *site.Site, loop *scheduler.Loop, logger *slog.Logger) {
	for name, fn := range s.Exports() {
		window.Set(name, js.FuncOf(func(_ js.Value, args []js.Value) any {
			goArgs := make([]any, 0, len(args))
			for _, a := range args {
				goArgs = append(goArgs, goValue(a))
			}
			loop.Post(func() {
				if err := fn(goArgs...); err != nil {
					logger.Warn("page entry point failed", "name", name, "error", err)
				}
			})
			return nil
		}))
	}

	data, err := json.Marshal(s.Catalog().Projects())
	if err != nil {
		logger.Warn("catalog not exported", "error", err)
		return
	}
	window.Set("portfolioProjects", window.Get("JSON").Call("parse", string(data)))
}

func goValue(v js.Value) any {
	switch v.Type() {
	case js.TypeNumber:
		return v.Float()
	case js.TypeString:
		return v.String()
	case js.TypeBoolean:
		return v.Bool()
	default:
		return nil
	}
}
