// Package portalsdk holds the wire types of the portal API plus a small
// HTTP client for them. The server handlers encode these types directly, so
// SDK consumers and the end-to-end suite share one source of truth for the
// JSON surface.
package portalsdk
