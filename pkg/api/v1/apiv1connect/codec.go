// Package apiv1connect exposes the HomiMeet v1 services over the Connect protocol.
//
// Handlers and clients exchange the plain structs of package apiv1 as JSON
// (Content-Type application/json) through Codec.
package apiv1connect

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// Codec marshals apiv1 messages as JSON. It replaces Connect's default
// "json" codec, which only accepts protobuf messages.
type Codec struct{}

var _ connect.Codec = Codec{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) { return json.Marshal(msg) }

// Unmarshal implements connect.Codec. An empty body decodes to the zero message.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// serviceMux collects one service's procedures.
type serviceMux struct {
	path string
	mux  *http.ServeMux
	opts []connect.HandlerOption
}

func newServiceMux(serviceName string, opts []connect.HandlerOption) *serviceMux {
	return &serviceMux{
		path: "/" + serviceName + "/",
		mux:  http.NewServeMux(),
		opts: append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...),
	}
}

func (s *serviceMux) handler() (string, http.Handler) {
	return s.path, s.mux
}

func handle[Req, Res any](s *serviceMux, procedure string, fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error)) {
	s.mux.Handle(procedure, connect.NewUnaryHandler(procedure, fn, s.opts...))
}

func newClient[Req, Res any](httpClient connect.HTTPClient, baseURL, procedure string, opts []connect.ClientOption) *connect.Client[Req, Res] {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return connect.NewClient[Req, Res](httpClient, strings.TrimRight(baseURL, "/")+procedure, opts...)
}
