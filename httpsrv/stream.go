package httpsrv

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

var errNegativeCount = errors.New("count must not be negative")

const readTimeout = time.Second * 15
const pingPeriod = time.Second * 10
const writeTimeout = time.Second

// handleStream sends one StreamMessage per draw.
// count=0 streams until the client goes away.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	clientIP := r.RemoteAddr
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	q, err := parseDrawQuery(r, 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if q.count < 0 {
		writeError(w, http.StatusBadRequest, errNegativeCount)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ERROR] %s websocket upgrade failed: %v", clientIP, err)
		return
	}
	defer conn.Close()
	log.Printf("[INFO] %s streaming session %s count=%d", clientIP, sess.ID, q.count)

	done := make(chan struct{})
	defer close(done)
	gone := make(chan struct{})
	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})
	go readLoop(conn, gone)
	go startPing(conn, done)

	var ticker *time.Ticker
	if q.interval > 0 {
		ticker = time.NewTicker(q.interval)
		defer ticker.Stop()
	}

	ctx := r.Context()
	for i := 0; q.count == 0 || i < q.count; i++ {
		if ticker != nil && i > 0 {
			select {
			case <-ticker.C:
			case <-gone:
				return
			case <-ctx.Done():
				return
			}
		} else {
			select {
			case <-gone:
				return
			case <-ctx.Done():
				return
			default:
			}
		}

		values, state := sess.gen.Draw(q.min, q.max, 1)
		s.draws.Add(1)
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(StreamMessage{Index: i, Value: values[0], State: state}); err != nil {
			log.Printf("[WARNING] %s stream of session %s ended: %v", clientIP, sess.ID, err)
			return
		}
	}

	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"),
		time.Now().Add(writeTimeout))
	log.Printf("[INFO] %s stream of session %s done", clientIP, sess.ID)
}

// readLoop consumes control frames and reports when the peer is gone
func readLoop(conn *websocket.Conn, gone chan struct{}) {
	defer close(gone)
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func startPing(conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeTimeout))
		case <-done:
			return
		}
	}
}
