// Package discovery finds consoles on the local network by broadcasting
// search datagrams and collecting the status responses they send back.
//
// A background goroutine owns the socket; the UI takes a snapshot of the
// known hosts once per frame through Hosts.
package discovery

import (
	"context"
	"fmt"
	"log"
	"net"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	searchPort    = 9302
	searchEvery   = 2 * time.Second
	hostExpiry    = 10 * time.Second
	searchPayload = "SRCH * HTTP/1.1\ndevice-discovery-protocol-version:00030010\n"
)

// HostStatus is the console power state parsed from a discovery response.
type HostStatus int

const (
	StatusUnknown HostStatus = iota
	StatusReady              // Powered on, accepting sessions
	StatusStandby            // Rest mode, needs a wakeup
)

func (s HostStatus) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusStandby:
		return "standby"
	default:
		return "unknown"
	}
}

// Host is one discovered console.
type Host struct {
	HostID   string
	Name     string
	Addr     string
	Status   HostStatus
	lastSeen time.Time
}

// Service broadcasts searches and tracks responders. Create with
// NewService, then Start once.
type Service struct {
	mu    sync.Mutex
	hosts map[string]Host

	conn   net.PacketConn
	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a discovery service. Start must be called before any
// hosts appear.
func NewService() *Service {
	return &Service{
		hosts: make(map[string]Host),
	}
}

// Start opens the socket and launches the search loop.
func (s *Service) Start() error {
	conn, err := net.ListenPacket("udp4", ":0")
	if err != nil {
		return fmt.Errorf("discovery socket: %w", err)
	}
	s.conn = conn

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.readLoop()
	go s.searchLoop(ctx)
	return nil
}

// Stop shuts the search loop down and closes the socket.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.conn.Close()
	<-s.done
}

// Hosts returns a snapshot of currently visible consoles, sorted by name.
// Hosts that stopped responding age out.
func (s *Service) Hosts() []Host {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	out := make([]Host, 0, len(s.hosts))
	for id, h := range s.hosts {
		if now.Sub(h.lastSeen) > hostExpiry {
			delete(s.hosts, id)
			continue
		}
		out = append(out, h)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Service) searchLoop(ctx context.Context) {
	defer close(s.done)

	dst := &net.UDPAddr{IP: net.IPv4bcast, Port: searchPort}
	ticker := time.NewTicker(searchEvery)
	defer ticker.Stop()

	for {
		if _, err := s.conn.WriteTo([]byte(searchPayload), dst); err != nil {
			// Expected once the socket closes on Stop
			if ctx.Err() != nil {
				return
			}
			log.Printf("discovery: broadcast failed: %v", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Service) readLoop() {
	buf := make([]byte, 2048)
	for {
		n, addr, err := s.conn.ReadFrom(buf)
		if err != nil {
			return
		}

		host, ok := parseResponse(string(buf[:n]))
		if !ok {
			continue
		}
		if udp, isUDP := addr.(*net.UDPAddr); isUDP {
			host.Addr = udp.IP.String()
		}
		host.lastSeen = time.Now()

		s.mu.Lock()
		s.hosts[host.HostID] = host
		s.mu.Unlock()
	}
}

// parseResponse decodes a discovery status datagram. The first line carries
// the power state ("200 Ok" awake, "620 Server Standby" in rest mode); the
// rest are key:value headers.
func parseResponse(raw string) (Host, bool) {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 {
		return Host{}, false
	}

	var h Host
	switch {
	case strings.Contains(lines[0], "200"):
		h.Status = StatusReady
	case strings.Contains(lines[0], "620"):
		h.Status = StatusStandby
	default:
		return Host{}, false
	}

	for _, line := range lines[1:] {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "host-id":
			h.HostID = value
		case "host-name":
			h.Name = value
		}
	}

	if h.HostID == "" {
		return Host{}, false
	}
	return h, true
}
