package reqline

import (
	"context"
	"errors"
	"net"
	"time"

	"dqx0.com/go/framing/internal/obs"
	"dqx0.com/go/framing/reqline/internal/http1"
)

var errNilResponse = errors.New("reqline: handler returned no response")

type connState int

const (
	stateIdle connState = iota
	stateReading
	stateParsed
	stateResponding
	stateClosed
)

func (s connState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateReading:
		return "reading"
	case stateParsed:
		return "parsed"
	case stateResponding:
		return "responding"
	case stateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// conn is the per-connection task. Nothing in it is shared with other
// connections.
type conn struct {
	srv    *Server
	rwc    net.Conn
	id     string
	remote string
	state  connState
	start  time.Time
}

// ServeConn handles exactly one request on c and closes it. The returned
// error is the failure that ended the connection, or nil after a response
// was written.
func (s *Server) ServeConn(ctx context.Context, c net.Conn) error {
	cc := &conn{
		srv:   s,
		rwc:   c,
		state: stateIdle,
		start: time.Now(),
	}
	if a := c.RemoteAddr(); a != nil {
		cc.remote = a.String()
		ctx = WithRemoteAddr(ctx, a)
	}
	id, err := newConnID()
	if err != nil {
		s.logger().Log(obs.Warn, "connection id unavailable",
			obs.F("remote", cc.remote),
			obs.F("error", err),
		)
	}
	cc.id = id
	ctx = WithConnID(ctx, cc.id)
	err = cc.serve(ctx)
	cc.close(err)
	return err
}

func (c *conn) setState(s connState) {
	if c.state == stateClosed || s <= c.state {
		// single request per connection: states only move forward
		return
	}
	c.state = s
}

func (c *conn) serve(ctx context.Context) error {
	c.setState(stateReading)
	rd := &http1.Reader{
		Conn:    c.rwc,
		Buf:     make([]byte, c.srv.maxRequestBytes()),
		Timeout: c.srv.readTimeout(),
	}
	head, err := rd.ReadHead(c.srv.RequireHeaders)
	if err != nil {
		return err
	}
	req, err := ParseRequest(head)
	if err != nil {
		return err
	}
	c.setState(stateParsed)
	c.srv.logger().Log(obs.Info, "request received",
		obs.F("conn_id", c.id),
		obs.F("remote", c.remote),
		obs.F("method", req.Method().String()),
		obs.F("path", req.Path()),
		obs.F("headers", map[string]string(req.Headers())),
	)

	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := c.srv.handler().ServeRequest(ctx, req)
	if err != nil {
		return err
	}
	if res == nil {
		return errNilResponse
	}

	c.setState(stateResponding)
	if err := res.Emit(c.rwc, c.srv.writeTimeout()); err != nil {
		return err
	}
	c.srv.logger().Log(obs.Info, "response sent",
		obs.F("conn_id", c.id),
		obs.F("remote", c.remote),
		obs.F("status", res.Status().Text()),
	)
	return nil
}

func (c *conn) close(err error) {
	failedIn := c.state
	c.setState(stateClosed)
	_ = c.rwc.Close()

	kind := Kind(err)
	log := c.srv.logger()
	switch {
	case err == nil:
	case errors.Is(err, ErrConnectionClosed):
		log.Log(obs.Debug, "peer closed connection",
			obs.F("conn_id", c.id),
			obs.F("remote", c.remote),
			obs.F("state", failedIn.String()),
		)
	default:
		log.Log(obs.Error, "error",
			obs.F("conn_id", c.id),
			obs.F("remote", c.remote),
			obs.F("kind", kind),
			obs.F("state", failedIn.String()),
			obs.F("error", err),
		)
	}
	log.Log(obs.Debug, "connection closed", obs.F("conn_id", c.id), obs.F("remote", c.remote))

	m := c.srv.meter()
	m.Counter(obs.MetricConnections, 1, obs.Label{Key: "outcome", Value: kind})
	m.Histogram(obs.MetricConnectionSeconds, time.Since(c.start).Seconds())
}
