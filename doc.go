// Package webterm renders DOS/BBS-era ANSI art and live VT-100 byte streams
// into a pixel-faithful 80x25 text-mode display: CP437 glyphs from an EGA
// 8x14 font, 16-color SGR attributes, 3x4 aspect-ratio-corrected pixels,
// CRT-style post-processing, and a navigable scrollback history.
//
// # Quick Start
//
// Feed raw CP437/ANSI bytes to a terminal and rasterize the result:
//
//	term := webterm.New()
//	term.ProcessBytes(data)
//	img := webterm.NewRenderer(webterm.VGA).RenderView(term.Screen(), term.Scrollback())
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Terminal]: the coordinator; the only path by which bytes reach the
//     parser, so history is captured before destructive actions
//   - [Screen]: the fixed 80x25 cell grid with the cursor
//   - [Parser]: the three-state ANSI escape sequence machine
//   - [Scrollback]: bounded packed history with mouse, keyboard, and viewer
//     navigation modes and an animated exit
//   - [Renderer]: the deterministic rasterizer to a 1920x1400 RGBA image
//   - [PostProcessor]: the CRT effect contract ([BlurPostProcessor] is the
//     standard separable Gaussian)
//
// # History capture
//
// Whole-screen clears (ESC[2J) and bottom-line scrolls destroy content, so
// the Terminal evaluates pre-capture predicates against the parser state
// before each byte is dispatched and pushes the doomed lines to scrollback
// first. Feeding bytes directly to a Parser skips this capture.
//
// # Scrollback modes
//
// Mouse mode anchors the view over the same absolute lines as new content
// arrives and auto-exits when scrolled back to the bottom. Keyboard mode
// (Alt+K) holds an absolute position and only leaves via the animated exit.
// Viewer mode is used after instant bulk renders: it starts at the top of
// history and shows no indicator.
//
// # Pacing
//
// [RenderAnsi] replays a byte stream at a simulated modem baud rate,
// presenting frames through a [Presenter] at 30 fps:
//
//	webterm.RenderAnsi(ctx, data, webterm.RenderOptions{
//	    BPS:       9600,
//	    Palette:   webterm.PaletteNamed("cga"),
//	    Presenter: presenter,
//	})
//
// The wasm build in wasm/ embeds terminals into a host document; see
// cmd/webterm-bridge for the native WebSocket-to-TCP bridge.
package webterm
