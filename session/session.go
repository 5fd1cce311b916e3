// Package session runs the connect sequence to a registered console on a
// background goroutine: wake the console over UDP, wait for it to come up,
// then establish the stream control connection.
//
// The UI polls Stage once per frame; all cross-goroutine state is atomic so
// the frame loop never blocks on the network.
package session

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync/atomic"
	"time"

	"github.com/user-none/vitalink/ui/storage"
)

// Stage is the session lifecycle position.
type Stage int32

const (
	StageIdle Stage = iota
	StageWaking
	StageConnecting
	StageStreaming
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageWaking:
		return "waking"
	case StageConnecting:
		return "connecting"
	case StageStreaming:
		return "streaming"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	wakeupPort  = 9302
	controlPort = 9295

	wakeTimeout    = 70 * time.Second
	wakeProbeEvery = 2 * time.Second
	dialTimeout    = 10 * time.Second
)

// Session is one connect attempt. Create with Start; a Session is not
// reusable after Stop or failure.
type Session struct {
	host storage.RegisteredHost

	stage atomic.Int32
	err   atomic.Value // error

	cancel context.CancelFunc
	done   chan struct{}

	conn net.Conn
}

// Start begins connecting to the host in the background.
func Start(host storage.RegisteredHost) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		host:   host,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.stage.Store(int32(StageWaking))

	go s.run(ctx)
	return s
}

// Stage returns the current lifecycle position. Safe from any goroutine.
func (s *Session) Stage() Stage {
	return Stage(s.stage.Load())
}

// Err returns the failure cause, or nil. Only meaningful once Stage
// reports StageFailed.
func (s *Session) Err() error {
	if v := s.err.Load(); v != nil {
		return v.(error)
	}
	return nil
}

// Host returns the console this session targets.
func (s *Session) Host() storage.RegisteredHost {
	return s.host
}

// Stop cancels the attempt and waits for the worker to exit.
func (s *Session) Stop() {
	s.cancel()
	<-s.done
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	if s.Stage() != StageFailed {
		s.stage.Store(int32(StageIdle))
	}
}

func (s *Session) run(ctx context.Context) {
	defer close(s.done)

	if err := s.wake(ctx); err != nil {
		s.fail(fmt.Errorf("waking %s: %w", s.host.Name, err))
		return
	}

	s.stage.Store(int32(StageConnecting))

	conn, err := s.connect(ctx)
	if err != nil {
		s.fail(fmt.Errorf("connecting to %s: %w", s.host.Name, err))
		return
	}
	s.conn = conn

	s.stage.Store(int32(StageStreaming))
	log.Printf("session: streaming from %s (%s)", s.host.Name, s.host.Addr)
}

// wake sends the wakeup packet and keeps resending until the console's
// control port accepts connections or the timeout passes. A console already
// awake answers the first probe immediately.
func (s *Session) wake(ctx context.Context) error {
	deadline := time.Now().Add(wakeTimeout)

	if err := s.sendWakeup(); err != nil {
		return err
	}

	ticker := time.NewTicker(wakeProbeEvery)
	defer ticker.Stop()

	for {
		if s.probeControlPort() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("console did not wake within %v", wakeTimeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.sendWakeup(); err != nil {
				log.Printf("session: wakeup resend failed: %v", err)
			}
		}
	}
}

// sendWakeup fires the UDP wakeup datagram carrying the credential derived
// from the registration key.
func (s *Session) sendWakeup() error {
	addr := net.JoinHostPort(s.host.Addr, fmt.Sprintf("%d", wakeupPort))
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return fmt.Errorf("wakeup dial: %w", err)
	}
	defer conn.Close()

	payload := fmt.Sprintf(
		"WAKEUP * HTTP/1.1\n"+
			"client-type:vr\n"+
			"auth-type:R\n"+
			"model:w\n"+
			"app-type:r\n"+
			"user-credential:%s\n",
		s.host.RegistKey)

	if _, err := conn.Write([]byte(payload)); err != nil {
		return fmt.Errorf("wakeup send: %w", err)
	}
	return nil
}

// probeControlPort reports whether the console's control port accepts a
// TCP connection yet.
func (s *Session) probeControlPort() bool {
	addr := net.JoinHostPort(s.host.Addr, fmt.Sprintf("%d", controlPort))
	conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// connect opens the stream control connection.
func (s *Session) connect(ctx context.Context) (net.Conn, error) {
	d := net.Dialer{Timeout: dialTimeout}
	addr := net.JoinHostPort(s.host.Addr, fmt.Sprintf("%d", controlPort))

	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (s *Session) fail(err error) {
	log.Printf("session: %v", err)
	s.err.Store(err)
	s.stage.Store(int32(StageFailed))
}
