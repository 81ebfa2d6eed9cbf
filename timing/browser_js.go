//go:build js && wasm

package timing

import (
	"syscall/js"
	"time"
)

// BrowserConsole forwards to the page's console.time / console.timeEnd so
// timings appear in the browser devtools, and measures the region itself for
// the caller.
type BrowserConsole struct {
	console js.Value
	sw      Stopwatch
}

func NewBrowserConsole() *BrowserConsole {
	return &BrowserConsole{console: js.Global().Get("console")}
}

func (b *BrowserConsole) Start(label string) {
	b.console.Call("time", label)
	b.sw.Start(label)
}

func (b *BrowserConsole) Stop(label string) time.Duration {
	d := b.sw.Stop(label)
	b.console.Call("timeEnd", label)
	return d
}
