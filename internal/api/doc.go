// Package api provides HTTP handlers for the API. Handlers map requests
// and responses onto the services; all business rules live below this
// layer.
package api
