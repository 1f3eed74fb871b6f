// Package reqline provides a small, strict HTTP/1.1 request framing
// server: one request per connection, one bounded read, one status-line
// response.
//
// Highlights
//   - Reading: the request head is read into a fixed-capacity buffer
//     under a read deadline. Heads that do not fit are rejected with
//     ErrRequestTooLarge; nothing grows without bound.
//   - Parsing: the request line must carry a supported method and a
//     path; the version token is optional. Header lines are split at
//     the first colon, names kept as received, last value wins.
//   - Responding: the handler's Response is written as a single status
//     line (plus optional headers) under a write deadline and flushed.
//   - Failures: any read, parse or write failure closes the connection
//     without writing a response. Kind maps an error to a stable label.
//   - Observability: plug-in Logger and Meter from internal/obs.
//
// Quick start:
//
//	s := &reqline.Server{Addr: ":8080"}
//	s.Handler = reqline.HandlerFunc(func(ctx context.Context, r *reqline.Request) (*reqline.Response, error) {
//	    if r.Path() != "/hello" {
//	        return reqline.NewResponse(reqline.StatusNotFound), nil
//	    }
//	    return reqline.NewResponse(reqline.StatusOK), nil
//	})
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
package reqline
