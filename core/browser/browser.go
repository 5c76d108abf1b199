package browser

import (
	"io"

	pkgbrowser "github.com/pkg/browser"
	"go.uber.org/zap"
)

// Opener opens a URL in a web browser.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(url string) error

// Open calls f(url).
func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// System returns an Opener backed by the operating system's default browser.
func System() Opener {
	// The launcher's own output would interleave with the server logs.
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
	return OpenerFunc(pkgbrowser.OpenURL)
}

// Launch opens url on its own goroutine and logs a warning if that fails.
// The returned channel is closed once the attempt has finished.
func Launch(opener Opener, url string, log *zap.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := opener.Open(url); err != nil {
			log.Warn("Could not open a browser, open the URL manually",
				zap.String("url", url),
				zap.Error(err),
			)
			return
		}
		log.Debug("Browser opened", zap.String("url", url))
	}()
	return done
}
