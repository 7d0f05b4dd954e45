// Package apiv1 defines the request and response messages of the HomiMeet v1 API.
//
// Messages are plain Go structs carried as JSON by the codec in apiv1connect.
// Field tags drive both the wire names and go-playground/validator rules,
// which services check before touching storage.
package apiv1
