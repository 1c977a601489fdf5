//go:build js && wasm

package main

import (
	"fmt"
	"strconv"
	"syscall/js"

	webterm "github.com/bbs-land/go-webterm"
)

// instance is one embedded terminal: a canvas in the host document, the
// terminal state, and the renderer pipeline. Input event closures share the
// instance; every handler finishes its mutation and re-render before any
// further callback can run, so handlers never re-enter each other.
type instance struct {
	term     *webterm.Terminal
	renderer *webterm.Renderer
	post     webterm.PostProcessor
	canvas   js.Value
	ctx      js.Value
	socket   js.Value

	// animating guards against starting a second requestAnimationFrame loop.
	animating bool

	// funcs are retained so they are not collected while listeners live.
	funcs []js.Func
}

// newInstance creates the canvas, appends it to the container, and wires the
// input events. The socket is connected separately.
func newInstance(container js.Value, palette webterm.Palette, scrollbackLines int) (*instance, error) {
	canvas, err := createCanvas(webterm.CanvasWidth, webterm.CanvasHeight)
	if err != nil {
		return nil, err
	}
	ctx, err := context2D(canvas)
	if err != nil {
		return nil, err
	}
	container.Call("appendChild", canvas)

	inst := &instance{
		term:     webterm.New(webterm.WithScrollbackLines(scrollbackLines)),
		renderer: webterm.NewRenderer(palette),
		post:     webterm.NewBlurPostProcessor(),
		canvas:   canvas,
		ctx:      ctx,
	}
	inst.setupEvents()
	inst.render()
	return inst, nil
}

// render rasterizes the current view and blits it to the canvas.
func (inst *instance) render() {
	blitImage(inst.ctx, inst.post.Process(inst.term.Rasterize(inst.renderer)))
}

// processBytes feeds received bytes through the terminal and re-renders.
func (inst *instance) processBytes(data []byte) {
	inst.term.ProcessBytes(data)
	inst.render()
}

// afterHandled re-renders and kicks off the exit animation when a handler
// just started one.
func (inst *instance) afterHandled(wasAnimating bool) {
	inst.render()
	if !wasAnimating && inst.term.AnimatingExit() {
		inst.startExitAnimation()
	}
}

// startExitAnimation drives AnimateExitFrame from requestAnimationFrame
// until the animation completes or is cancelled by user input.
func (inst *instance) startExitAnimation() {
	if inst.animating {
		return
	}
	inst.animating = true

	var frame js.Func
	frame = js.FuncOf(func(js.Value, []js.Value) any {
		if !inst.term.AnimatingExit() {
			inst.animating = false
			frame.Release()
			return nil
		}
		still := inst.term.AnimateExitFrame()
		inst.render()
		if still {
			js.Global().Call("requestAnimationFrame", frame)
		} else {
			inst.animating = false
			frame.Release()
		}
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)
}

func (inst *instance) setupEvents() {
	// Focusable for keyboard events.
	inst.canvas.Set("tabIndex", 0)

	wheel := js.FuncOf(func(_ js.Value, args []js.Value) any {
		event := args[0]
		event.Call("preventDefault")
		event.Call("stopPropagation")
		wasAnimating := inst.term.AnimatingExit()
		if inst.term.HandleWheel(event.Get("deltaY").Float()) {
			inst.afterHandled(wasAnimating)
		}
		return nil
	})
	opts := js.Global().Get("Object").New()
	opts.Set("passive", false)
	inst.canvas.Call("addEventListener", "wheel", wheel, opts)

	keydown := js.FuncOf(func(_ js.Value, args []js.Value) any {
		event := args[0]
		key := event.Get("key").String()
		alt := event.Get("altKey").Bool()

		if key == "Enter" && alt {
			event.Call("preventDefault")
			event.Call("stopPropagation")
			toggleFullscreen(inst.canvas)
			return nil
		}

		wasAnimating := inst.term.AnimatingExit()
		if inst.term.HandleKey(key, alt) {
			event.Call("preventDefault")
			event.Call("stopPropagation")
			inst.afterHandled(wasAnimating)
			return nil
		}
		if data := keyToBytes(key, event.Get("ctrlKey").Bool()); len(data) > 0 {
			event.Call("preventDefault")
			inst.send(data)
		}
		return nil
	})
	inst.canvas.Call("addEventListener", "keydown", keydown)

	click := js.FuncOf(func(_ js.Value, args []js.Value) any {
		event := args[0]
		inst.canvas.Call("focus")
		wasAnimating := inst.term.AnimatingExit()
		if inst.term.HandleClick() {
			event.Call("preventDefault")
			event.Call("stopPropagation")
			inst.afterHandled(wasAnimating)
		}
		return nil
	})
	inst.canvas.Call("addEventListener", "click", click)

	// Middle-click would start browser auto-scroll over the canvas.
	mousedown := js.FuncOf(func(_ js.Value, args []js.Value) any {
		event := args[0]
		if event.Get("button").Int() == 1 {
			event.Call("preventDefault")
			event.Call("stopPropagation")
		}
		return nil
	})
	inst.canvas.Call("addEventListener", "mousedown", mousedown)

	inst.funcs = append(inst.funcs, wheel, keydown, click, mousedown)
}

// connect opens the WebSocket byte channel and pumps received data into the
// terminal.
func (inst *instance) connect(url string) error {
	wsCtor := js.Global().Get("WebSocket")
	if !wsCtor.Truthy() {
		return fmt.Errorf("no WebSocket support")
	}
	socket := wsCtor.New(url)
	socket.Set("binaryType", "arraybuffer")

	onmessage := js.FuncOf(func(_ js.Value, args []js.Value) any {
		buf := js.Global().Get("Uint8Array").New(args[0].Get("data"))
		data := make([]byte, buf.Get("length").Int())
		js.CopyBytesToGo(data, buf)
		inst.processBytes(data)
		return nil
	})
	socket.Set("onmessage", onmessage)

	onerror := js.FuncOf(func(_ js.Value, args []js.Value) any {
		consoleError("webterm: socket error for", url)
		return nil
	})
	socket.Set("onerror", onerror)

	inst.funcs = append(inst.funcs, onmessage, onerror)
	inst.socket = socket
	return nil
}

// send forwards input bytes to the host channel, if connected.
func (inst *instance) send(data []byte) {
	if !inst.socket.Truthy() || inst.socket.Get("readyState").Int() != 1 {
		return
	}
	buf := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(buf, data)
	inst.socket.Call("send", buf)
}

// keyToBytes translates a browser key name to the bytes a BBS expects.
func keyToBytes(key string, ctrl bool) []byte {
	switch key {
	case "Enter":
		return []byte{'\r'}
	case "Backspace":
		return []byte{0x08}
	case "Tab":
		return []byte{'\t'}
	case "Escape":
		return []byte{0x1B}
	case "ArrowUp":
		return []byte("\x1b[A")
	case "ArrowDown":
		return []byte("\x1b[B")
	case "ArrowRight":
		return []byte("\x1b[C")
	case "ArrowLeft":
		return []byte("\x1b[D")
	}
	runes := []rune(key)
	if len(runes) != 1 {
		return nil
	}
	b, ok := webterm.EncodeCP437(runes[0])
	if !ok {
		return nil
	}
	if ctrl && b >= 'a' && b <= 'z' {
		b = b - 'a' + 1
	}
	return []byte{b}
}

// parseScrollbackLines parses the data-term-scrollback-lines attribute.
func parseScrollbackLines(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return webterm.DefaultMaxLines
	}
	return n
}
