//go:build js && wasm

package main

import (
	"context"
	"fmt"
	"image"
	"syscall/js"

	webterm "github.com/bbs-land/go-webterm"
)

func main() {
	js.Global().Set("initWebTerm", js.FuncOf(initWebTerm))
	js.Global().Set("renderAnsi", js.FuncOf(renderAnsi))

	// Keep the program running.
	select {}
}

// initWebTerm scans the host document for elements carrying data-term-url
// and instantiates a live terminal in each. A failed container logs and is
// skipped; it does not poison siblings.
func initWebTerm(js.Value, []js.Value) any {
	doc, err := document()
	if err != nil {
		consoleError("webterm:", err.Error())
		return nil
	}
	nodes := doc.Call("querySelectorAll", "[data-term-url]")
	count := nodes.Get("length").Int()
	consoleLog(fmt.Sprintf("webterm: found %d terminal(s)", count))

	for i := 0; i < count; i++ {
		if err := initTerminal(nodes.Index(i)); err != nil {
			consoleError("webterm: failed to initialize terminal:", err.Error())
		}
	}
	return nil
}

// initTerminal sets up one live terminal from its container's attributes.
func initTerminal(container js.Value) error {
	url, ok := dataAttribute(container, "term-url")
	if !ok {
		return fmt.Errorf("missing data-term-url")
	}

	paletteName, _ := dataAttribute(container, "term-palette")
	scrollbackLines := webterm.DefaultMaxLines
	if s, ok := dataAttribute(container, "term-scrollback-lines"); ok {
		scrollbackLines = parseScrollbackLines(s)
	}

	inst, err := newInstance(container, webterm.PaletteNamed(paletteName), scrollbackLines)
	if err != nil {
		return err
	}
	return inst.connect(url)
}

// renderAnsi renders a static CP437 ANSI byte stream into the container
// matched by selector. Arguments: (selector string, content Uint8Array,
// options {bps, palette, scrollbackLines}).
func renderAnsi(_ js.Value, args []js.Value) any {
	if len(args) < 2 {
		consoleError("webterm: renderAnsi(selector, bytes, options?)")
		return nil
	}
	selector := args[0].String()

	buf := js.Global().Get("Uint8Array").New(args[1])
	content := make([]byte, buf.Get("length").Int())
	js.CopyBytesToGo(content, buf)

	bps := 0
	paletteName := ""
	scrollbackLines := 0
	if len(args) >= 3 && args[2].Type() == js.TypeObject {
		opts := args[2]
		if v := opts.Get("bps"); v.Type() == js.TypeNumber {
			bps = v.Int()
		}
		if v := opts.Get("palette"); v.Type() == js.TypeString {
			paletteName = v.String()
		}
		if v := opts.Get("scrollbackLines"); v.Type() == js.TypeNumber {
			scrollbackLines = v.Int()
		}
	}

	// The pacing loop sleeps between frames, so it runs off the event loop.
	go func() {
		if err := renderAnsiInto(selector, content, bps, paletteName, scrollbackLines); err != nil {
			consoleError("webterm: renderAnsi:", err.Error())
		}
	}()
	return nil
}

func renderAnsiInto(selector string, content []byte, bps int, paletteName string, scrollbackLines int) error {
	doc, err := document()
	if err != nil {
		return err
	}
	container := doc.Call("querySelector", selector)
	if !container.Truthy() {
		return fmt.Errorf("container %q not found", selector)
	}

	inst, err := newInstance(container, webterm.PaletteNamed(paletteName), scrollbackLines)
	if err != nil {
		return err
	}

	// Replay into the instance's own terminal so scrollback navigation keeps
	// working on the final content.
	return inst.term.Replay(context.Background(), content, webterm.RenderOptions{
		BPS:           bps,
		Palette:       webterm.PaletteNamed(paletteName),
		PostProcessor: inst.post,
		Presenter: webterm.PresenterFunc(func(img *image.RGBA) {
			blitImage(inst.ctx, img)
		}),
	})
}
