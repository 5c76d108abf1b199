// Package browser launches the operating system's default web browser.
//
// Launching is best effort: machines without a desktop session have no
// browser to start, so failures are only logged.
package browser
