// Package api handles incoming HTTP requests for accounts and contacts:
// request decoding and validation, mapping service errors to status codes,
// and response formatting. Handlers are thin adapters over the service
// layer and never talk to the store directly.
package api
