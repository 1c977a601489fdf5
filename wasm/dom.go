//go:build js && wasm

package main

import (
	"fmt"
	"image"
	"syscall/js"
)

// DOM helpers for creating and managing terminal canvases.

func document() (js.Value, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Value{}, fmt.Errorf("no document object")
	}
	return doc, nil
}

// createCanvas creates a display canvas with responsive scaling styles and
// crisp pixel rendering.
func createCanvas(width, height int) (js.Value, error) {
	doc, err := document()
	if err != nil {
		return js.Value{}, err
	}
	canvas := doc.Call("createElement", "canvas")
	canvas.Set("width", width)
	canvas.Set("height", height)

	style := canvas.Get("style")
	style.Call("setProperty", "max-width", "100%")
	style.Call("setProperty", "max-height", "100%")
	style.Call("setProperty", "width", "100%")
	style.Call("setProperty", "display", "block")
	style.Call("setProperty", "image-rendering", "pixelated")
	return canvas, nil
}

// context2D returns the canvas 2d drawing context.
func context2D(canvas js.Value) (js.Value, error) {
	ctx := canvas.Call("getContext", "2d")
	if !ctx.Truthy() {
		return js.Value{}, fmt.Errorf("failed to get 2d context")
	}
	return ctx, nil
}

// blitImage copies an RGBA frame onto the canvas via ImageData.
func blitImage(ctx js.Value, img *image.RGBA) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	buf := js.Global().Get("Uint8ClampedArray").New(len(img.Pix))
	js.CopyBytesToJS(buf, img.Pix)
	imageData := js.Global().Get("ImageData").New(buf, w, h)
	ctx.Call("putImageData", imageData, 0, 0)
}

// dataAttribute reads data-<name> from an element; ok is false when absent.
func dataAttribute(element js.Value, name string) (string, bool) {
	v := element.Call("getAttribute", "data-"+name)
	if !v.Truthy() {
		return "", false
	}
	return v.String(), true
}

// toggleFullscreen enters or leaves fullscreen on the canvas element.
func toggleFullscreen(canvas js.Value) {
	doc, err := document()
	if err != nil {
		return
	}
	if doc.Get("fullscreenElement").Truthy() {
		doc.Call("exitFullscreen")
	} else {
		canvas.Call("requestFullscreen")
	}
}

func consoleLog(args ...any)   { js.Global().Get("console").Call("log", args...) }
func consoleError(args ...any) { js.Global().Get("console").Call("error", args...) }
